package config

type (
	InternalConfig struct {
		App      App
		JWT      JWT
		RabbitMQ AppRabbitMQ
		Minio    AppMinio
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	App struct {
		Env                              string
		Port                             string
		Name                             string
		Version                          string
		Timezone                         string
		CORSAllowedOrigins               []string
		MaxRequests                      int
		ShutdownTimeout                  int
		RequestTimeoutInSeconds          int
		AuthMaxRequestsPerMinute         int
		LoginMaxAttempts                 int
		LoginAttemptWindowInSeconds      int
		DoctorDirectoryCacheTTLInSeconds int
		StrictStatusTransitions          bool
	}

	JWT struct {
		Secret        string
		Issuer        string
		ExpTimeInHour int
	}

	AppRabbitMQ struct {
		Enabled     bool
		EventsQueue string
	}

	AppMinio struct {
		Enabled    bool
		BucketName string
	}

	MongoDB struct {
		URI      string
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)
