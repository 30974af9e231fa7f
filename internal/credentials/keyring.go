package credentials

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

const serviceName = "concierge"

type KeyType string

const (
	KeyOpenWeather  KeyType = "openweather_api_key"
	KeyAlphaVantage KeyType = "alpha_vantage_api_key"
	KeyAnthropic    KeyType = "anthropic_api_key"
)

var allKeys = []KeyType{KeyOpenWeather, KeyAlphaVantage, KeyAnthropic}

func Set(key KeyType, value string) error {
	return keyring.Set(serviceName, string(key), value)
}

func Get(key KeyType) (string, error) {
	return keyring.Get(serviceName, string(key))
}

func Delete(key KeyType) error {
	return keyring.Delete(serviceName, string(key))
}

// GetOrEnv prefers the environment value and falls back to the keychain.
func GetOrEnv(key KeyType, envValue string) string {
	if envValue != "" {
		return envValue
	}
	val, err := Get(key)
	if err != nil {
		return ""
	}
	return val
}

func ListConfigured() map[KeyType]bool {
	result := make(map[KeyType]bool)
	for _, k := range allKeys {
		_, err := Get(k)
		result[k] = err == nil
	}
	return result
}

func ClearAll() error {
	var lastErr error
	for _, k := range allKeys {
		if err := Delete(k); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Setup stores the non-empty keys in the OS keychain.
func Setup(openWeatherKey, alphaVantageKey, anthropicKey string) error {
	if openWeatherKey != "" {
		if err := Set(KeyOpenWeather, openWeatherKey); err != nil {
			return fmt.Errorf("failed to store OpenWeather key: %w", err)
		}
	}

	if alphaVantageKey != "" {
		if err := Set(KeyAlphaVantage, alphaVantageKey); err != nil {
			return fmt.Errorf("failed to store Alpha Vantage key: %w", err)
		}
	}

	if anthropicKey != "" {
		if err := Set(KeyAnthropic, anthropicKey); err != nil {
			return fmt.Errorf("failed to store Anthropic key: %w", err)
		}
	}

	return nil
}
