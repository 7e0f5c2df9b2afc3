package cmd

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	SMSGatewayURL       string
	SMSGatewayAPIKey    string
	OverdueAfterMinutes string
}
