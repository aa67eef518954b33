package dto

// CredentialDTO 管理员登录
type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthStateDTO 会话状态
type AuthStateDTO struct {
	Authenticated bool `json:"authenticated"`
}
