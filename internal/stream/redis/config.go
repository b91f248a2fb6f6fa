package redis

type RedisStreamConfig struct {
	RedisAddr     string
	RedisPassword string
	Stream        string
	Group         string
	ConsumerName  string
	ResultsStream string
}

func NewRedisStreamConfig(redisAddr, redisPassword, stream, group, consumerName, resultsStream string) *RedisStreamConfig {
	if consumerName == "" {
		consumerName = "validator-1"
	}

	return &RedisStreamConfig{
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		Stream:        stream,
		Group:         group,
		ConsumerName:  consumerName,
		ResultsStream: resultsStream,
	}
}
