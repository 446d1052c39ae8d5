package curate

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// genericPool is the last resort: broadly useful videos on learning any new
// skill. Selection never leaves a day without a video.
var genericPool = []VerifiedVideo{
	{"5MgBikgcWnY", "The First 20 Hours: How to Learn Anything"},
	{"O96fE1E-rf8", "How to Practice Effectively for Just About Anything"},
	{"f2O6mQkFiiw", "How to Learn Faster with the Feynman Technique"},
	{"IlU-zDU6aQ0", "How to Get Better at the Things You Care About"},
	{"un2H5h4R4xU", "Deliberate Practice: How to Master Any Skill"},
	{"ukLnPbIffxE", "How to Build a Daily Practice Habit"},
	{"Cm0J9gM2bU8", "Beginner Mindset: How to Start a New Hobby"},
	{"4cvBzRJRz9Q", "Setting Goals for Learning a New Skill"},
	{"iONDebHX9qk", "How to Stay Motivated When Learning Something New"},
	{"p60rN9JEapg", "The Science of Learning: Tips for Beginners"},
	{"TQMbvJNRpLE", "How to Track Progress in a New Skill"},
	{"eVajQPuRmk8", "How to Learn From Mistakes When Practicing"},
	{"Hu4Yvq-g7_Y", "Finding Your Learning Style as a Beginner"},
	{"mZCOq-Mg5Pg", "Planning Your Next Steps After the Basics"},
}

func poolIndex(hobby string, day int) int {
	h := fnv.New32a()
	_, _ = fmt.Fprintf(h, "%s|%d", strings.ToLower(strings.TrimSpace(hobby)), clampDay(day))
	return int(h.Sum32() % uint32(len(genericPool)))
}

// GenericVideo picks a pool entry for (hobby, day) from a stable hash,
// probing forward for one the registry does not hold yet. The claim happens
// here. A repeat is only returned once every pool entry is taken.
func GenericVideo(hobby string, day int, reg *UsedVideoRegistry) VerifiedVideo {
	start := poolIndex(hobby, day)
	for i := 0; i < len(genericPool); i++ {
		v := genericPool[(start+i)%len(genericPool)]
		if reg == nil || reg.Claim(v.ID) {
			return v
		}
	}
	return genericPool[start]
}

