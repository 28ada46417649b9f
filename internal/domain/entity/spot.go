package entity

// Spot is a watched surf spot.
type Spot struct {
	Name      string  `json:"name" mapstructure:"name" validate:"required"`
	Latitude  float64 `json:"latitude" mapstructure:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" mapstructure:"longitude" validate:"min=-180,max=180"`
}
