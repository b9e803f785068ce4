package valueobjects

type Category string

const (
	CategoryAC             Category = "ac"
	CategoryProjector      Category = "projector"
	CategoryHDMICable      Category = "hdmi_cable"
	CategoryWifi           Category = "wifi"
	CategoryFurniture      Category = "furniture"
	CategoryCleanliness    Category = "cleanliness"
	CategoryPowerOutlet    Category = "power_outlet"
	CategoryWhiteboard     Category = "whiteboard"
	CategorySoundSystem    Category = "sound_system"
	CategoryLights         Category = "lights"
	CategoryWaterDispenser Category = "water_dispenser"
	CategoryOther          Category = "other"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryAC, CategoryProjector, CategoryHDMICable, CategoryWifi,
		CategoryFurniture, CategoryCleanliness, CategoryPowerOutlet,
		CategoryWhiteboard, CategorySoundSystem, CategoryLights,
		CategoryWaterDispenser, CategoryOther:
		return true
	}
	return false
}
