package courier

func isValidStatus(status string) bool {
	switch status {
	case "free", "busy", "offline":
		return true
	default:
		return false
	}
}

func isValidTransport(transport string) bool {
	switch transport {
	case "pedestrian", "bicycle", "car":
		return true
	default:
		return false
	}
}
