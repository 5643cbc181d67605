package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldFolder 文件夹标识字段
	FieldFolder = "folder"

	// FieldNote 笔记标识字段
	FieldNote = "note"

	// FieldSlug slug 字段
	FieldSlug = "slug"

	// FieldQuery 搜索词字段
	FieldQuery = "query"

	// FieldPeriod 通讯周期字段
	FieldPeriod = "period"

	// FieldEmail 收件人字段
	FieldEmail = "email"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldError 错误信息字段
	FieldError = "error"
)
