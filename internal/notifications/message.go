package notifications

import "fmt"

// relayNote is the message body handed to the relay provider. The relay's own
// template interpolates the code from the otp_code param, so the code itself
// must appear in exactly one field of the envelope.
const relayNote = "This code will expire in 10 minutes.\n\n" +
	"If you did not request this code, please ignore this email.\n\n" +
	"Best regards,\n" + FromName

func renderText(code string) string {
	return fmt.Sprintf(
		"Verification Code - %s\n\nHello,\n\nYour verification code is: %s\n\n"+
			"This code will expire in 10 minutes.\n\n"+
			"If you did not request this code, please ignore this email.\n\n"+
			"Best regards,\n%s\n",
		AppName, code, FromName)
}

func renderHTML(code string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Verification Code</h2>
  <p>Hello,</p>
  <p>Your verification code for %s is:</p>
  <div style="background-color: #f4f4f4; padding: 20px; text-align: center; margin: 20px 0;">
    <h1 style="color: #007bff; font-size: 32px; margin: 0;">%s</h1>
  </div>
  <p>This code will expire in 10 minutes.</p>
  <p>If you did not request this code, please ignore this email.</p>
  <hr style="margin: 20px 0;">
  <p style="color: #666; font-size: 12px;">Best regards,<br>%s</p>
</div>`, AppName, code, FromName)
}
