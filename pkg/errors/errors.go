package errors

import "errors"

// ErrNotFound 记录不存在：用于内存集合的查找路径
// 注意：课表与通知的变更操作对未知 id 是静默空操作，不返回此错误
var ErrNotFound = errors.New("记录不存在")
