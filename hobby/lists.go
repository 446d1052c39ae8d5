package hobby

import "ewintr.nl/hobbyplan/model"

// categories partitions the curated hobby list. Order within a bucket is the
// order prefix matches are tried in.
var categories = []struct {
	category model.Category
	hobbies  []string
}{
	{model.CategoryCreative, []string{
		"drawing", "painting", "watercolor", "calligraphy", "photography", "knitting",
		"crochet", "sewing", "embroidery", "pottery", "woodworking", "origami",
		"jewelry making", "guitar", "piano", "ukulele", "violin", "drums", "singing",
		"creative writing", "poetry", "scrapbooking", "graphic design", "animation",
		"leathercraft", "candle making", "quilting",
	}},
	{model.CategoryOutdoor, []string{
		"gardening", "hiking", "camping", "fishing", "birdwatching", "rock climbing",
		"kayaking", "surfing", "skiing", "snowboarding", "cycling", "mountain biking",
		"foraging", "stargazing", "geocaching", "beekeeping", "sailing",
	}},
	{model.CategoryFitness, []string{
		"running", "swimming", "weight training", "calisthenics", "boxing",
		"martial arts", "tennis", "basketball", "soccer", "skateboarding", "dance",
		"pilates", "jump rope", "golf", "badminton", "volleyball",
	}},
	{model.CategoryGames, []string{
		"chess", "poker", "sudoku", "crossword puzzles", "video games", "board games",
		"magic tricks", "rubiks cube", "juggling", "card games",
	}},
	{model.CategoryTechnology, []string{
		"programming", "web development", "3d printing", "robotics", "electronics",
		"arduino", "video editing", "photo editing", "blogging", "podcasting",
		"game development", "data science",
	}},
	{model.CategoryCulinary, []string{
		"cooking", "baking", "bread making", "cake decorating", "coffee brewing",
		"homebrewing", "fermentation", "grilling", "sushi making", "mixology",
		"cheese making", "tea tasting",
	}},
	{model.CategoryWellness, []string{
		"yoga", "meditation", "journaling", "tai chi", "mindfulness", "breathwork",
		"bible study", "quran study", "torah study", "language learning",
	}},
}

var popular = []string{"guitar", "drawing", "cooking", "yoga", "photography", "gardening", "chess", "running"}

var stopWords = map[string]bool{
	"hi": true, "hey": true, "hello": true, "yo": true, "ok": true, "okay": true,
	"test": true, "testing": true, "cool": true, "nice": true, "yes": true, "yeah": true,
	"no": true, "nope": true, "nothing": true, "none": true, "idk": true, "dunno": true,
	"lol": true, "hmm": true, "asdf": true, "qwerty": true, "thanks": true,
	"thank you": true, "sure": true, "whatever": true, "something": true,
	"anything": true, "stuff": true, "hobby": true, "hobbies": true, "help": true,
	"please": true, "good": true, "fine": true, "bored": true, "n/a": true, "na": true,
	"learn": true, "learning": true,
}

var synonyms = map[string]string{
	"sketching":     "drawing",
	"sketch":        "drawing",
	"doodling":      "drawing",
	"jogging":       "running",
	"jog":           "running",
	"coding":        "programming",
	"code":          "programming",
	"weightlifting": "weight training",
	"lifting":       "weight training",
	"gym":           "weight training",
	"bodybuilding":  "weight training",
	"bouldering":    "rock climbing",
	"climbing":      "rock climbing",
	"biking":        "cycling",
	"bike riding":   "cycling",
	"trekking":      "hiking",
	"backpacking":   "hiking",
	"birding":       "birdwatching",
	"knit":          "knitting",
	"pastry":        "baking",
	"woodwork":      "woodworking",
	"carpentry":     "woodworking",
	"ceramics":      "pottery",
	"astronomy":     "stargazing",
	"meditating":    "meditation",
	"journalling":   "journaling",
	"diary":         "journaling",
	"football":      "soccer",
	"crocheting":    "crochet",
	"photos":        "photography",
	"writing":       "creative writing",
	"poems":         "poetry",
	"keyboard":      "piano",
	"cubing":        "rubiks cube",
	"mtb":           "mountain biking",
}

// typos are surfaced as a confirmation suggestion, never accepted silently.
var typos = map[string]string{
	"guitr":        "guitar",
	"gutar":        "guitar",
	"guiter":       "guitar",
	"paintng":      "painting",
	"photograpy":   "photography",
	"fotography":   "photography",
	"cookng":       "cooking",
	"cokking":      "cooking",
	"knitng":       "knitting",
	"yoag":         "yoga",
	"meditaion":    "meditation",
	"gardning":     "gardening",
	"programing":   "programming",
	"runing":       "running",
	"swiming":      "swimming",
	"drawng":       "drawing",
	"skatebording": "skateboarding",
	"bakeing":      "baking",
	"hikeing":      "hiking",
}

var curated = func() map[string]model.Category {
	m := make(map[string]model.Category)
	for _, c := range categories {
		for _, h := range c.hobbies {
			m[h] = c.category
		}
	}
	return m
}()

// FindCategory returns the bucket a curated hobby belongs to, or the empty
// category for anything else.
func FindCategory(hobby string) model.Category {
	return curated[hobby]
}

// Known reports whether hobby is one of the curated names.
func Known(hobby string) bool {
	_, ok := curated[hobby]
	return ok
}

func Popular() []string {
	out := make([]string, len(popular))
	copy(out, popular)
	return out
}
