package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	QuoteHandler      *QuoteHandler
	MessageHandler    *MessageHandler
	MentorshipHandler *MentorshipHandler
	UserHandler       *UserHandler
	FileHandler       *FileHandler
}
