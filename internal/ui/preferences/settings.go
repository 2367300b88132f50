package preferences

// Settings defines editable user preferences.
type Settings struct {
	Notifications bool
	Autostart     bool
}

// DefaultSettings returns default settings for MultiTimer.
func DefaultSettings() Settings {
	return Settings{
		Notifications: true,
		Autostart:     false,
	}
}
