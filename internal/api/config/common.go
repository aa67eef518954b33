package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Blog   BlogConfig   `mapstructure:"blog"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// MongoConfig MongoDB配置
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`

	// OpTimeout 单次存储操作的超时秒数，0 表示只受请求上下文约束
	OpTimeout int `mapstructure:"op_timeout"`
}

// AuthConfig 管理员会话配置
type AuthConfig struct {
	// AdminUsername 唯一管理员账号
	AdminUsername string `mapstructure:"admin_username"`

	// AdminPasswordHash 管理员密码的 bcrypt 哈希
	AdminPasswordHash string `mapstructure:"admin_password_hash"`

	JWTSecret string `mapstructure:"jwt_secret"`

	// TokenTTLHours 会话令牌有效期（小时），默认 24
	TokenTTLHours int `mapstructure:"token_ttl_hours"`
}

// BlogConfig 博客行为开关
type BlogConfig struct {
	// CascadeCommentDelete 删除文章时是否级联删除其评论
	// false 时孤儿评论保留，仍可通过文章 ID 定位（审计用途）
	CascadeCommentDelete bool `mapstructure:"cascade_comment_delete"`
}
