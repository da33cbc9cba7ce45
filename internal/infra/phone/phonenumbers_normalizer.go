// Package phone normalises free-form phone numbers to E.164.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/pkg/errors"

	"clinic/config"
	"clinic/internal/domain/service"
)

var ErrInvalidNumber = errors.New("invalid phone number")

type normalizer struct {
	region string
}

func NewNormalizer(cfg *config.Config) service.PhoneNormalizer {
	region := "US"
	if cfg != nil && cfg.Phone != nil && cfg.Phone.DefaultRegion != "" {
		region = strings.ToUpper(cfg.Phone.DefaultRegion)
	}

	return &normalizer{region: region}
}

func (n *normalizer) Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidNumber
	}

	num, err := phonenumbers.Parse(raw, n.region)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidNumber, "%q: %v", raw, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", errors.Wrapf(ErrInvalidNumber, "%q", raw)
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}
