package mail

import "strings"

const verificationTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Verify your email</h2>
  <p>Hello,</p>
  <p>Thanks for signing up for Job Nest. Your verification code is:</p>
  <p style="font-size: 32px; font-weight: bold; letter-spacing: 6px;">{verificationCode}</p>
  <p>Enter this code on the verification page. The code expires in 24 hours.</p>
  <p>If you didn't create an account, you can ignore this email.</p>
</body>
</html>`

const welcomeTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Welcome to Job Nest, {name}!</h2>
  <p>Your email is verified. You can now browse jobs, save them, and apply.</p>
</body>
</html>`

const resetRequestTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Password Reset Request</h2>
  <p>We received a request to reset your password. Click the link below to choose a new one:</p>
  <p><a href="{resetURL}">Reset password</a></p>
  <p>The link expires in 30 minutes. If you didn't request this, you can ignore this email.</p>
</body>
</html>`

const resetSuccessTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Password Reset Successful</h2>
  <p>Your password was changed. If this wasn't you, contact support immediately.</p>
</body>
</html>`

func renderVerification(code string) string {
	return strings.Replace(verificationTemplate, "{verificationCode}", code, 1)
}

func renderWelcome(name string) string {
	return strings.Replace(welcomeTemplate, "{name}", name, 1)
}

func renderResetRequest(link string) string {
	return strings.Replace(resetRequestTemplate, "{resetURL}", link, 1)
}
