package scheduling

const DefaultIntervalMinutes = 30

// GenerateGrid devolve os horários de start até antes de end, em passos de
// interval minutos. O fim nunca é incluído. interval <= 0 usa o padrão.
func GenerateGrid(start, end Clock, interval int) []Clock {
	if interval <= 0 {
		interval = DefaultIntervalMinutes
	}
	if end > minutesPerDay {
		end = minutesPerDay
	}

	var grid []Clock
	for c := start; c < end; c += Clock(interval) {
		grid = append(grid, c)
	}
	return grid
}

// TemplateGrid expande os horários textuais de um expediente.
func TemplateGrid(startTime, endTime string, interval int) ([]Clock, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return nil, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return nil, err
	}
	return GenerateGrid(start, end, interval), nil
}

func Labels(grid []Clock) []string {
	out := make([]string, len(grid))
	for i, c := range grid {
		out[i] = c.String()
	}
	return out
}
