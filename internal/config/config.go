package config

type Config interface {
	ListenAddr() string

	ReadBufferSize() int
	MaxHeaderBytes() int
	RespondOnDecodeError() bool

	LogLevel() string
	LogFormat() string
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) ListenAddr() string         { return c.listenAddr }
func (c *config) ReadBufferSize() int        { return c.readBufferSize }
func (c *config) MaxHeaderBytes() int        { return c.maxHeaderBytes }
func (c *config) RespondOnDecodeError() bool { return c.respondOnDecodeError }
func (c *config) LogLevel() string           { return c.logLevel }
func (c *config) LogFormat() string          { return c.logFormat }
