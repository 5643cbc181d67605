package dto

// SubscribeRequest 通讯订阅表单
// SubscribeRequest is the newsletter subscription form payload.
type SubscribeRequest struct {
	FirstName string `form:"first_name" binding:"required,max=100"`
	LastName  string `form:"last_name" binding:"required,max=100"`
	Email     string `form:"email" binding:"required,email,max=254"`
	Frequency string `form:"frequency" binding:"required,oneof=weekly monthly"`
	// Topics 逗号分隔的兴趣标签，可为空
	Topics string `form:"topics" binding:"omitempty,max=500"`
}
