package store

import (
	"encoding/json"

	"go.uber.org/zap"
)

// mergeObject applies each top-level key of the JSON object raw onto dst,
// which holds the defaults. A key whose value does not fit its field is
// logged and skipped; the remaining keys still apply. It returns false when
// raw is not a JSON object at all.
func mergeObject[T any](raw string, dst *T, logger *zap.Logger) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return false
	}
	for key, value := range fields {
		one, err := json.Marshal(map[string]json.RawMessage{key: value})
		if err != nil {
			logger.Warn("skipping unencodable field", zap.String("key", key), zap.Error(err))
			continue
		}
		trial := *dst
		if err := json.Unmarshal(one, &trial); err != nil {
			logger.Warn("skipping mistyped field", zap.String("key", key), zap.Error(err))
			continue
		}
		*dst = trial
	}
	return true
}
