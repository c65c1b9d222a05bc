// Package config manages the ~/.learnly/ configuration file and environment
// overrides via Viper. Keys of interest: api.base_url (backend address) and
// http.timeout_seconds (request timeout for API calls).
package config
