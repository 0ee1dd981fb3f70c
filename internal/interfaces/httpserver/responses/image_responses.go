package responses

// ImageResponse is a resolved dish image.
type ImageResponse struct {
	DishName string `json:"dish_name"`
	URL      string `json:"url"`
	Source   string `json:"source"`
}

// WarmupResponse reports how many warmup jobs were scheduled.
type WarmupResponse struct {
	Enqueued int `json:"enqueued"`
}
