package dto

// VoteReq 投票请求，action 取 like / dislike，重复投递为撤销
type VoteReq struct {
	VoterID string `json:"voter_id"`
	Action  string `json:"action"`
}

// EngagementDTO 帖子互动状态
// DislikeCount 仅对管理员暴露，普通访客拿到 nil 并在序列化时省略
type EngagementDTO struct {
	LikeCount     int64  `json:"like_count"`
	DislikeCount  *int64 `json:"dislike_count,omitempty"`
	VoterLiked    bool   `json:"voter_liked"`
	VoterDisliked bool   `json:"voter_disliked"`
}

// ViewDTO 浏览计数响应
type ViewDTO struct {
	Views       int64 `json:"views"`
	Incremented bool  `json:"incremented"`
}
