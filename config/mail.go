package config

const (
	MailSendgrid = "sendgrid"
	MailLog      = "log"
)

type Mail struct {
	Driver        string `json:"driver" yaml:"driver"` // sendgrid | log
	ApiKey        string `json:"api_key" yaml:"api_key"`
	FromName      string `json:"from_name" yaml:"from_name"`
	FromAddress   string `json:"from_address" yaml:"from_address"`
	SubjectPrefix string `json:"subject_prefix" yaml:"subject_prefix"`
}
