package podcast

import "strconv"

// Cloud is the rssCloud notification endpoint. It is stored as a whole or not
// at all.
type Cloud struct {
	Domain            string
	Port              int
	Path              string
	RegisterProcedure string
	Protocol          string
}

func (c Cloud) complete() bool {
	return c.Domain != "" && c.Port > 0 && c.Port <= 65535 && c.Path != "" &&
		c.RegisterProcedure != "" && c.Protocol != ""
}

func (c Cloud) attrs() [][2]string {
	return [][2]string{
		{"domain", c.Domain},
		{"port", strconv.Itoa(c.Port)},
		{"path", c.Path},
		{"registerProcedure", c.RegisterProcedure},
		{"protocol", c.Protocol},
	}
}
