// Package config manages the ~/.gwflow/config.yaml file and GWFLOW_* environment
// variables via Viper. It stores load defaults (model version, strict mode,
// verbosity) consulted by CLI commands when flags are not given.
package config
