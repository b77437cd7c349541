package calendar

// Presets returns the built-in calendars. The library core never loads
// them on its own; the CLI and API register them at startup, and callers
// embedding the library start from an empty registry.
func Presets() []*Config {
	return []*Config{
		{
			ID: "semester",
			Periods: []PeriodDef{
				{Name: "Fall", Code: "fa", StartMonth: 8, StartDay: 23},
				{Name: "Spring", Code: "sp", StartMonth: 1, StartDay: 15},
				{Name: "Summer", Code: "su", StartMonth: 6, StartDay: 1},
			},
			AYStartPeriod: "Fall",
		},
		{
			ID: "quarter",
			Periods: []PeriodDef{
				{Name: "Fall", Code: "fa", StartMonth: 9, StartDay: 20},
				{Name: "Winter", Code: "wi", StartMonth: 1, StartDay: 5},
				{Name: "Spring", Code: "sp", StartMonth: 3, StartDay: 30},
				{Name: "Summer", Code: "su", StartMonth: 6, StartDay: 22},
			},
			AYStartPeriod: "Fall",
		},
		{
			ID: "trimester",
			Periods: []PeriodDef{
				{Name: "Fall", Code: "fa", StartMonth: 9, StartDay: 1},
				{Name: "Winter", Code: "wi", StartMonth: 1, StartDay: 6},
				{Name: "Spring", Code: "sp", StartMonth: 4, StartDay: 20},
			},
			AYStartPeriod: "Fall",
		},
	}
}

// RegisterPresets registers every preset calendar into r.
func RegisterPresets(r *Registry) error {
	for _, cfg := range Presets() {
		if err := r.Register(cfg); err != nil {
			return err
		}
	}
	return nil
}
