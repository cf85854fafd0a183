package dto

import "github.com/orris-inc/estatehub/internal/domain/setting"

// SettingResponse is one effective setting as shown to admins.
type SettingResponse struct {
	Key         string `json:"key"`
	Value       any    `json:"value"`
	ValueType   string `json:"value_type"`
	Default     string `json:"default"`
	IsDefault   bool   `json:"is_default"`
	Description string `json:"description"`
}

// UpdateSettingsRequest carries raw values keyed by setting key.
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required,min=1"`
}

func ToSettingResponse(def setting.Definition, v setting.Value) SettingResponse {
	return SettingResponse{
		Key:         def.Key,
		Value:       v.Any(),
		ValueType:   string(def.Type),
		Default:     def.Default,
		IsDefault:   v.IsDefault(),
		Description: def.Description,
	}
}
