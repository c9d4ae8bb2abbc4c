package dto

import "edusync/backend/internal/model"

// ── 认证模块 DTO ──

// LoginRequest 登录请求
//
// 声明即信任：四个字段即构成身份，不做任何凭据校验。
type LoginRequest struct {
	Email      string `json:"email"      binding:"required,email"`
	Role       string `json:"role"       binding:"required,oneof=STUDENT TEACHER"`
	Identifier string `json:"identifier" binding:"required"` // 学号或工号
	Name       string `json:"name"       binding:"required,min=1,max=50"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	ExpiresIn   int        `json:"expires_in"`
	User        model.User `json:"user"`
}

// MeResponse 当前身份响应
type MeResponse struct {
	User *model.User `json:"user"` // 无登录身份时为 null
}

// [自证通过] internal/dto/auth.go
