package properties

import "os"

func RootPath() string {
	return os.Getenv("ROOT_PATH")
}

func ModelServerAddr() string {
	addr := os.Getenv("MODEL_SERVER_ADDR")
	if addr == "" {
		addr = "localhost:50051"
	}
	return addr
}

type Color struct {
	R, G, B uint8
}

// ColorMap assigns a render color to each domain land-cover code.
// Codes missing from the map render as UnknownColor.
var ColorMap = map[int16]Color{
	11:  {63, 110, 184},  // open water
	21:  {222, 30, 30},   // developed
	31:  {179, 174, 163}, // barren
	41:  {56, 129, 78},   // forest
	51:  {170, 150, 60},  // shrubland
	71:  {226, 226, 193}, // grassland
	81:  {219, 217, 60},  // pasture
	82:  {171, 112, 40},  // cultivated crops
	90:  {184, 217, 235}, // woody wetlands
	121: {100, 100, 100}, // mining / artificial bare
}

var UnknownColor = Color{255, 0, 255}

func DiscordErrorNotificationUrl() string {
	return os.Getenv("DISCORD_ERROR_NOTIFICATION_URL")
}
func DiscordSuccessNotificationUrl() string {
	return os.Getenv("DISCORD_SUCCESS_NOTIFICATION_URL")
}
