package config

// Messages holds the text shown during a game.
type Messages struct {
	First   string `yaml:"first"`
	Retry   string `yaml:"retry"`
	Success string `yaml:"success"`
}

// Config represents the .guess/config.yaml file.
type Config struct {
	Target     int      `yaml:"target"`
	Comparison string   `yaml:"comparison"`
	Messages   Messages `yaml:"messages"`
}
