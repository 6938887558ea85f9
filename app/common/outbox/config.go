package outbox

type RelayConf struct {
	Batch      int64  `json:",default=100"`
	MaxRetries int64  `json:",default=20"`
	Schedule   string `json:",default=@every 5s"`
}

type AsynqConf struct {
	Addr        string `json:",optional"`
	Password    string `json:",optional"`
	DB          int    `json:",optional"`
	Concurrency int    `json:",default=1"`
}
