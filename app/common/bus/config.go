package bus

type KafkaConf struct {
	Brokers         []string `json:",optional"`
	Group           string   `json:",optional"`
	DeadLetterTopic string   `json:",optional"`
	// attempts per message before it is dead-lettered
	MaxAttempts    int `json:",default=5"`
	RetryBackoffMs int `json:",default=200"`
}

func (c KafkaConf) Enabled() bool {
	return len(c.Brokers) > 0
}
