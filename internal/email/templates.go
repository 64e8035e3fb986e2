package email

import "fmt"

// ReplyNotification builds the message sent to a requester when an admin
// replies to their quote, message or mentorship application.
func ReplyNotification(to, fullName, resource string) *Email {
	subject := fmt.Sprintf("Your %s has received a reply", resource)
	body := fmt.Sprintf(
		"Hello %s,\n\nOur team has replied to your %s. "+
			"Please log in to the portal to view the details.\n\n"+
			"Kind regards,\nThe LCI Rwanda Team",
		fullName, resource,
	)
	return &Email{
		To:      to,
		Subject: subject,
		Body:    body,
	}
}
