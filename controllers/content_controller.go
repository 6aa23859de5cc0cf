package controller

import (
	"github.com/gofiber/fiber/v2"

	"safarsaathi/models"
)

// Static marketing copy for the landing page. The frontend owns layout and
// animation; this endpoint only hands it the data to render.

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Testimonial struct {
	Name   string `json:"name"`
	City   string `json:"city"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"`
}

type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
}

var landingContent = fiber.Map{
	"hero": Hero{
		Title:    "Every school run, watched over",
		Subtitle: "SafarSaathi puts a trained saathi and live GPS tracking on your child's daily commute, from your doorstep to the school gate.",
		CTA:      "Get early access",
	},
	"features": []Feature{
		{
			Title:       "Live trip tracking",
			Description: "Follow the commute in real time and get alerts at pickup and drop.",
			Icon:        "map-pin",
		},
		{
			Title:       "Verified saathis",
			Description: "Every companion is background-checked, trained and re-verified every quarter.",
			Icon:        "shield-check",
		},
		{
			Title:       "Instant SOS",
			Description: "One tap alerts parents and our response desk with the trip's live location.",
			Icon:        "bell-ring",
		},
		{
			Title:       "Daily attendance",
			Description: "Automatic confirmation when your child reaches school and home.",
			Icon:        "calendar-check",
		},
	},
	"howItWorks": []Step{
		{Number: 1, Title: "Tell us about your child", Description: "Share the school, grade and pickup point on the signup form."},
		{Number: 2, Title: "Meet your saathi", Description: "We match a verified companion from your neighbourhood and introduce them in person."},
		{Number: 3, Title: "Track every trip", Description: "Watch the commute live and get notified at every milestone."},
	},
	"testimonials": []Testimonial{
		{
			Name:   "Meera Kulkarni",
			City:   "Pune",
			Quote:  "My daughter's saathi didi has been with us for a year. I finally stopped worrying about the school run.",
			Rating: 5,
		},
		{
			Name:   "Rahul Deshpande",
			City:   "Mumbai",
			Quote:  "The drop confirmation every morning is a small thing that changed our whole routine.",
			Rating: 5,
		},
		{
			Name:   "Farah Sheikh",
			City:   "Hyderabad",
			Quote:  "We tried the SOS drill once. The response desk called within thirty seconds.",
			Rating: 4,
		},
	},
}

// GetContent returns the marketing sections plus the grade options the
// signup form should offer.
func GetContent(c *fiber.Ctx) error {
	content := fiber.Map{"gradeOptions": models.GradeBands}
	for k, v := range landingContent {
		content[k] = v
	}
	return c.JSON(content)
}
