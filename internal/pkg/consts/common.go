package consts

import "time"

const (
	// AdminSessionCookie 管理员会话令牌 Cookie
	AdminSessionCookie = "admin-session"

	// ViewLedgerCookie 访客浏览去重账本 Cookie
	ViewLedgerCookie = "blog_views"

	// IsAdminKey 鉴权中间件写入的管理员视角标记
	IsAdminKey = "is_admin"
)

const (
	// ViewDedupWindow 同一访客对同一文章的浏览计数去重窗口
	ViewDedupWindow = 7 * 24 * time.Hour

	// ViewLedgerMaxEntries 账本保留的最近浏览条目上限
	ViewLedgerMaxEntries = 50
)

const (
	VoteActionLike    = "like"
	VoteActionDislike = "dislike"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)
