package mail

import (
	"fmt"
	"html"
	"strings"
)

// Human-readable labels for the contact form enums, used in message bodies.
var (
	serviceTypeLabels = map[string]string{
		"ai-ml":                "AI & Machine Learning",
		"web-development":      "Web Development",
		"game-development":     "Game Development",
		"enterprise-solutions": "Enterprise Solutions",
		"custom-software":      "Custom Software",
		"consulting":           "Consulting",
	}

	projectTypeLabels = map[string]string{
		"new-project":       "New Project",
		"enhancement":       "Enhancement",
		"maintenance":       "Maintenance",
		"consulting":        "Consulting",
		"emergency-support": "Emergency Support",
	}

	budgetLabels = map[string]string{
		"under-5k":  "Under $5,000",
		"5k-15k":    "$5,000 - $15,000",
		"15k-50k":   "$15,000 - $50,000",
		"50k-100k":  "$50,000 - $100,000",
		"over-100k": "Over $100,000",
		"discuss":   "Let's Discuss",
	}

	timelineLabels = map[string]string{
		"asap":     "ASAP",
		"1-month":  "1 Month",
		"3-months": "3 Months",
		"6-months": "6 Months",
		"1-year":   "1 Year",
		"flexible": "Flexible",
	}
)

func label(labels map[string]string, value string) string {
	if l, ok := labels[value]; ok {
		return l
	}
	return value
}

func contactNotificationBody(inquiry Inquiry) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2>New Contact Form Submission</h2>`)

	b.WriteString(`<h3>Contact Information</h3>`)
	fmt.Fprintf(&b, `<p><strong>Name:</strong> %s</p>`, html.EscapeString(inquiry.Name))
	fmt.Fprintf(&b, `<p><strong>Email:</strong> %s</p>`, html.EscapeString(inquiry.Email))
	if inquiry.Company != "" {
		fmt.Fprintf(&b, `<p><strong>Company:</strong> %s</p>`, html.EscapeString(inquiry.Company))
	}
	if inquiry.Phone != "" {
		fmt.Fprintf(&b, `<p><strong>Phone:</strong> %s</p>`, html.EscapeString(inquiry.Phone))
	}

	b.WriteString(`<h3>Project Details</h3>`)
	fmt.Fprintf(&b, `<p><strong>Service Type:</strong> %s</p>`, label(serviceTypeLabels, inquiry.ServiceType))
	fmt.Fprintf(&b, `<p><strong>Project Type:</strong> %s</p>`, label(projectTypeLabels, inquiry.ProjectType))
	fmt.Fprintf(&b, `<p><strong>Budget Range:</strong> %s</p>`, label(budgetLabels, inquiry.BudgetRange))
	fmt.Fprintf(&b, `<p><strong>Timeline:</strong> %s</p>`, label(timelineLabels, inquiry.Timeline))

	b.WriteString(`<h3>Message</h3>`)
	fmt.Fprintf(&b, `<p style="white-space: pre-wrap;">%s</p>`, html.EscapeString(inquiry.Message))
	b.WriteString(`</div>`)

	return b.String()
}

func contactConfirmationBody(inquiry Inquiry, siteURL string) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2>Thank you for your inquiry!</h2>`)
	fmt.Fprintf(&b, `<p>Hi %s,</p>`, html.EscapeString(inquiry.Name))
	fmt.Fprintf(&b,
		`<p>We've received your project inquiry and we're excited to learn more about your %s needs.</p>`,
		strings.ToLower(label(serviceTypeLabels, inquiry.ServiceType)))

	b.WriteString(`<h3>What happens next?</h3><ul>`)
	b.WriteString(`<li>Our team will review your requirements within 24 hours</li>`)
	b.WriteString(`<li>We'll prepare a detailed proposal tailored to your needs</li>`)
	b.WriteString(`<li>We'll schedule a consultation call to discuss your project</li>`)
	b.WriteString(`</ul>`)

	b.WriteString(`<p>Best regards,<br>The ForstvalStudio Team</p>`)
	if siteURL != "" {
		fmt.Fprintf(&b, `<p>Website: %s</p>`, html.EscapeString(siteURL))
	}
	b.WriteString(`</div>`)

	return b.String()
}

func welcomeBody(name string) string {
	if name == "" {
		name = "there"
	}

	var b strings.Builder

	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2>Welcome to ForstvalStudio Newsletter!</h2>`)
	fmt.Fprintf(&b, `<p>Hi %s,</p>`, html.EscapeString(name))
	b.WriteString(`<p>Thank you for subscribing to our newsletter! You'll now receive:</p><ul>`)
	b.WriteString(`<li>Latest tech insights and tutorials</li>`)
	b.WriteString(`<li>Project updates and case studies</li>`)
	b.WriteString(`<li>Industry trends and best practices</li>`)
	b.WriteString(`<li>Exclusive resources and tools</li>`)
	b.WriteString(`</ul>`)
	b.WriteString(`<p>Best regards,<br>The ForstvalStudio Team</p>`)
	b.WriteString(`</div>`)

	return b.String()
}
