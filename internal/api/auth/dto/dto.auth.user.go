package authdto

// UserCreateInput đầu vào tạo người dùng (CRUD).
type UserCreateInput struct {
	Name       string `json:"name" validate:"required,no_xss"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,strong_password"`
	Phone      string `json:"phone" validate:"omitempty"`
	Role       string `json:"role" validate:"omitempty,role_name"`
	Department string `json:"department" validate:"omitempty,no_xss"`
}

// UserUpdateInput đầu vào cập nhật người dùng (CRUD).
type UserUpdateInput struct {
	Name       string `json:"name" validate:"omitempty,no_xss"`
	Phone      string `json:"phone" validate:"omitempty"`
	Department string `json:"department" validate:"omitempty,no_xss"`
}

// UserLoginInput đầu vào đăng nhập bằng email và mật khẩu.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Hwid     string `json:"hwid" validate:"required"`
}

// UserLogoutInput đầu vào đăng xuất người dùng.
type UserLogoutInput struct {
	Hwid string `json:"hwid" validate:"required"`
}

// UserChangeInfoInput đầu vào thay đổi thông tin người dùng.
type UserChangeInfoInput struct {
	Name string `json:"name"`
}

// UserChangePasswordInput đầu vào đổi mật khẩu.
type UserChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// BlockUserInput đầu vào khóa người dùng.
type BlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note" validate:"required"`
}

// UnBlockUserInput đầu vào mở khóa người dùng.
type UnBlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
}

// SetRoleInput đầu vào gán vai trò cho người dùng (tập vai trò đóng: admin, manager, staff).
type SetRoleInput struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,role_name"`
}
