package main

// User-facing message texts.
const (
	msgVerified = "✅ Channel membership confirmed!\nSend a code to receive your video:"

	msgJoinPrompt = "Hi! Before you can receive videos, join the channel(s) below, then run /start again:"

	msgCodeNotFound = "🚫 No video found for that code. Check the code or run /start again."

	msgUploadNeedsReply = "⬆️ To register a video, reply to the video message with /upload <code> <title>."
	msgUploadUsage      = "Usage: /upload <code> <title>"
	msgUploadOK         = "✅ Video saved! Code: %s -> %s"

	msgDeleteUsage    = "Usage: /delete <code>"
	msgDeleteOK       = "🗑 Video with code %s deleted."
	msgDeleteNotFound = "🚫 No video found for that code."

	msgHelp = "🎬 Send /start to verify your channel membership, then send a video code to receive the video."

	msgHelpAdmin = "\n\nAdmin commands:\n" +
		"/upload <code> <title> - reply to a video to register it\n" +
		"/delete <code> - remove a registered video\n" +
		"/status - bot diagnostics"

	joinButtonLabel = "➕ Join channel"
)
