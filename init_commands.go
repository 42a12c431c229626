package main

func SetupCommandRegistry() *CommandRegistry {
	r := NewCommandRegistry()

	// User
	r.Register("start", &StartCmd{})
	r.Register("help", &HelpCmd{})

	// Admin
	r.Register("upload", &UploadCmd{})
	r.Register("delete", &DeleteCmd{})
	r.Register("status", &StatusCmd{})

	return r
}
