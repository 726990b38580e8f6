package order

func isValidStatus(status string) bool {
	switch status {
	case "created", "searching", "assigned", "queued", "completed":
		return true
	default:
		return false
	}
}
