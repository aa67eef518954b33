package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrTitleRequired     = errors.New("标题不能为空")
	ErrContentRequired   = errors.New("正文不能为空")
	ErrAuthorRequired    = errors.New("作者不能为空")
	ErrCommentIncomplete = errors.New("评论昵称与内容不能为空")
	ErrPostNotFound      = errors.New("文章不存在")
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrSlugConflict      = errors.New("slug 已被占用")
	ErrVoterRequired     = errors.New("缺少投票者标识")
	ErrInvalidVoteAction = errors.New("无效的投票动作")
	ErrImageInvalid      = errors.New("图片数据无法解析")
	ErrPasswordIncorrect = errors.New("用户名或密码错误")
	UnauthorizedError    = errors.New("未登录或会话已过期")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrTitleRequired:     BadRequest,
	ErrContentRequired:   BadRequest,
	ErrAuthorRequired:    BadRequest,
	ErrCommentIncomplete: BadRequest,
	ErrPostNotFound:      NotFound,
	ErrCommentNotFound:   NotFound,
	ErrSlugConflict:      Conflict,
	ErrVoterRequired:     BadRequest,
	ErrInvalidVoteAction: BadRequest,
	ErrImageInvalid:      BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
