package cfg

type Cfg struct {
	FeedsDir   string
	Input      string
	Aggregator string
	Debug      bool
	Version    string
}
