package datasources

// DatasetRepository is implemented by each storage driver.
type DatasetRepository interface {
	ContentRepository
	CommentRepository
	UserRepository
	NotificationRepository
	DeviceTokenRepository
	APITokenRepository
}
