package config

// Mail SMTP 与提醒扫描配置
type Mail struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
	// SweepHour 每日提醒邮件的发送整点 0-23
	SweepHour int `json:"sweep_hour" yaml:"sweep_hour"`
}
