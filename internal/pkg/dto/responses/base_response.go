package responses

type Health struct {
	OK   bool   `json:"ok"`
	Name string `json:"name"`
}
