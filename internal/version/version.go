package version

// Version is reported by GET /api/v1/version.
const Version = "1.1.0"
