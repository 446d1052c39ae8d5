package curate

import (
	"strings"

	"ewintr.nl/hobbyplan/model"
)

// VerifiedVideo is a hand-checked tutorial that serves as a fallback when the
// search tiers come up empty.
type VerifiedVideo struct {
	ID    model.YoutubeVideoID
	Title string
}

type verifiedKey struct {
	hobby string
	day   int
}

var verifiedVideos = map[verifiedKey][]VerifiedVideo{
	{"guitar", 1}: {
		{"BBz-Jyr23M4", "Guitar Lesson 1 - Absolute Beginner? Start Here!"},
		{"cwXaPbYOWDY", "How To Play Guitar: Beginner Basics"},
	},
	{"guitar", 2}: {
		{"0K7MMFfmzvA", "Your First Guitar Chords - Easy Beginner Lesson"},
		{"vOT1ATPFrnk", "Switching Chords Faster: Beginner Guitar Technique"},
	},
	{"guitar", 3}: {
		{"vEDnRzwpj3c", "Strumming Patterns Every Beginner Should Practice"},
	},
	{"guitar", 4}: {
		{"JKGzxSJUl8k", "10 Common Beginner Guitar Mistakes and How To Fix Them"},
	},
	{"guitar", 5}: {
		{"cbDkhPyjMoM", "Play Your First Song on Guitar - Beginner Tutorial"},
	},
	{"guitar", 6}: {
		{"A9gJdFlCoqk", "Fingerpicking for Beginners: Complete Guide"},
	},
	{"guitar", 7}: {
		{"Z3E5fE9c3vg", "What To Learn Next on Guitar - Beginner Roadmap"},
	},

	{"cooking", 1}: {
		{"G-Fg7l7G1zw", "Knife Skills for Beginners - Cooking Basics"},
	},
	{"cooking", 2}: {
		{"UOBOsPyLwoE", "How To Saute, Roast and Simmer: Basic Cooking Techniques"},
	},
	{"cooking", 3}: {
		{"1AxLzMJIgxM", "5 Easy Recipes Every Beginner Cook Should Learn"},
	},
	{"cooking", 4}: {
		{"bNP-h3ZPIi8", "Seasoning 101: How To Taste and Adjust Your Cooking"},
	},
	{"cooking", 5}: {
		{"nMTeUx7J3S4", "Cooking Without a Recipe: Beginner Guide"},
	},
	{"cooking", 6}: {
		{"Nq_6lfmDAbg", "How To Cook a Complete Meal - Timing Tutorial"},
	},
	{"cooking", 7}: {
		{"kfhLd0EvGJI", "Meal Planning for Beginners: Complete Guide"},
	},

	{"drawing", 1}: {
		{"ewMksAbgdBI", "How To Draw for Beginners - Basic Lines and Shapes"},
	},
	{"drawing", 2}: {
		{"ai8KoEKW4vQ", "Shading Basics: Beginner Drawing Tutorial"},
	},
	{"drawing", 3}: {
		{"yTn_rSb8h4g", "Drawing Practice Exercises for Beginners"},
	},
	{"drawing", 4}: {
		{"6EGPeK-8F04", "Perspective Drawing Basics Tutorial"},
	},
	{"drawing", 5}: {
		{"HSIhOUuhbsY", "How To Draw From Imagination - Beginner Guide"},
	},
	{"drawing", 6}: {
		{"Tl2o3u3dK4A", "Drawing a Complete Still Life - Step by Step Tutorial"},
	},
	{"drawing", 7}: {
		{"mQHBUOiWPKk", "How To Keep Improving at Drawing - Learning Plan"},
	},

	{"yoga", 1}: {
		{"v7AYKMP6rOE", "Yoga For Complete Beginners - 20 Minute Home Yoga Workout"},
	},
	{"yoga", 2}: {
		{"Eml2xnoLpYE", "Basic Yoga Poses for Beginners Tutorial"},
	},
	{"yoga", 3}: {
		{"sTANio_2E0Q", "Gentle Yoga Flow for Beginners - Practice Routine"},
	},
	{"yoga", 4}: {
		{"9kOCY0KNByw", "Common Yoga Mistakes Beginners Make and How To Fix Them"},
	},
	{"yoga", 5}: {
		{"b1H3xO3x_Js", "Yoga for Flexibility - Beginner Friendly Class"},
	},
	{"yoga", 6}: {
		{"oBu-pQG6sTY", "Full Body Yoga Class - Intermediate Flow Tutorial"},
	},
	{"yoga", 7}: {
		{"Nw2oBIrQGLo", "How To Build a Home Yoga Practice - Complete Guide"},
	},
}

// Verified returns the hand-checked videos for one day of a hobby, in order
// of preference. Unknown hobbies yield nothing.
func Verified(hobby string, day int) []VerifiedVideo {
	return verifiedVideos[verifiedKey{hobby: strings.ToLower(strings.TrimSpace(hobby)), day: clampDay(day)}]
}
