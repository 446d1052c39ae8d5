package plantext

// genericStages: fundamentals, core technique, applied practice, refinement,
// creative exploration, integration, mastery and planning.
var genericStages = [7]dayTemplate{
	{
		title:       "{Hobby} Fundamentals and Setup",
		mainTask:    "Set up your space and learn the basic vocabulary of {hobby}",
		explanation: "Every skill rests on a few fundamentals. Today you get your tools ready and learn what the core ideas of {hobby} are, so the rest of the week has something to build on.",
		howTo: []string{
			"Gather the basic tools or materials you need for {hobby}",
			"Watch today's tutorial once without stopping",
			"Write down the three most important terms or ideas you heard",
			"Try the very first exercise from the tutorial slowly",
		},
		checklist: []string{"Workspace ready", "Basic tools gathered", "First exercise attempted"},
		tips:      []string{"Keep it simple, you do not need expensive gear yet", "Short focused sessions beat long distracted ones"},
		mistakes:  []string{"Buying too much equipment on day one", "Skipping the basics to get to the fun part"},
	},
	{
		title:       "Core {Hobby} Techniques",
		mainTask:    "Practice the one core technique everything else in {hobby} depends on",
		explanation: "With the setup done you can focus on technique. Repeating one core movement or method today makes the next days much easier.",
		howTo: []string{
			"Review yesterday's notes for five minutes",
			"Follow the tutorial and pause after each demonstration to copy it",
			"Repeat the core technique at least ten times, slowly",
			"Note what felt awkward so you can revisit it",
		},
		checklist: []string{"Core technique practiced ten times", "Awkward spots noted"},
		tips:      []string{"Slow and correct beats fast and sloppy", "Record yourself if you can, it shows what you miss"},
		mistakes:  []string{"Rushing through repetitions", "Practicing mistakes until they become habits"},
	},
	{
		title:       "Applied {Hobby} Practice",
		mainTask:    "Use what you learned on a small, complete {hobby} exercise",
		explanation: "Technique sticks once it is used for something real. Today you finish one small piece of work from start to end.",
		howTo: []string{
			"Pick a small exercise or project that fits in today's session",
			"Plan the steps before you start",
			"Work through it using the techniques from day 2",
			"Compare your result with the tutorial",
		},
		checklist: []string{"Exercise chosen", "Exercise finished", "Result compared with tutorial"},
		tips:      []string{"Finishing matters more than perfection today", "Keep your first result, you will want to see your progress later"},
		mistakes:  []string{"Choosing a project that is too big", "Stopping halfway because it is not perfect"},
	},
	{
		title:       "Refining Your {Hobby} Skills",
		mainTask:    "Fix the two weakest points you noticed so far",
		explanation: "Midway through the week you have enough practice to see patterns. Today is about targeted improvement instead of doing more of the same.",
		howTo: []string{
			"Look back at your notes and pick the two biggest problems",
			"Find the part of the tutorial that addresses each one",
			"Drill each problem in isolation",
			"Redo part of yesterday's exercise and compare",
		},
		checklist: []string{"Two weak points identified", "Each one drilled", "Before and after compared"},
		tips:      []string{"Isolate the problem, do not practice everything at once", "Small improvements add up quickly"},
		mistakes:  []string{"Only practicing what you are already good at", "Changing too many things at the same time"},
	},
	{
		title:       "Creative Exploration in {Hobby}",
		mainTask:    "Try a style or variation of {hobby} you have not tried yet",
		explanation: "Exploring keeps motivation high and shows you which direction you enjoy most. Today you experiment without worrying about results.",
		howTo: []string{
			"Browse a few examples of different styles in {hobby}",
			"Choose one that appeals to you",
			"Follow the tutorial for that variation",
			"Make something of your own using it",
		},
		checklist: []string{"New style chosen", "Variation attempted", "Own piece started"},
		tips:      []string{"There are no wrong answers today", "Notice what you enjoy, that is where to go next"},
		mistakes:  []string{"Comparing yourself to experts", "Sticking only to the safe option"},
	},
	{
		title:       "Bringing Your {Hobby} Skills Together",
		mainTask:    "Combine everything from this week in one session of {hobby}",
		explanation: "Real progress shows when separate skills work together. Today you run a full session that uses the fundamentals, the core technique and your own ideas.",
		howTo: []string{
			"Warm up with the core technique from day 2",
			"Start a slightly bigger piece of work than on day 3",
			"Apply the fixes from day 4 while you work",
			"Add one element from your exploration on day 5",
		},
		checklist: []string{"Warm-up done", "Combined session finished", "One creative element added"},
		tips:      []string{"Think about flow, not individual steps", "Take a short break halfway to reset"},
		mistakes:  []string{"Forgetting the warm-up", "Trying to use every technique at once"},
	},
	{
		title:       "{Hobby} Mastery Path and Next Steps",
		mainTask:    "Review your week and plan how to keep improving at {hobby}",
		explanation: "One week is a start, not an end. Today you look back at your progress and set up a routine so the habit continues after the plan.",
		howTo: []string{
			"Put your day 3 result next to today's work",
			"Write down three things that improved",
			"Choose one skill to focus on next week",
			"Schedule your next three practice sessions",
		},
		checklist: []string{"Progress reviewed", "Next focus chosen", "Practice sessions scheduled"},
		tips:      []string{"Celebrate the progress you made", "Join a community to stay motivated"},
		mistakes:  []string{"Stopping practice after the plan ends", "Setting goals that are too vague"},
	},
}

var hobbyTables = map[string][7]dayTemplate{
	"guitar": {
		{
			title:       "Guitar Setup and Fundamentals",
			mainTask:    "Tune your guitar and learn how to hold it and the pick",
			explanation: "A guitar that is out of tune makes every exercise sound wrong. Today you learn to tune, sit with good posture and hold the pick so your hands are ready for chords.",
			howTo:       []string{"Install a tuner app or clip-on tuner", "Tune each string from low E to high E", "Practice holding the guitar with a relaxed posture", "Pick each open string slowly, ten times"},
			checklist:   []string{"Guitar tuned", "Posture checked in a mirror", "Open strings picked cleanly"},
			tips:        []string{"Tune every time you pick up the guitar", "Keep your shoulders relaxed"},
			mistakes:    []string{"Gripping the neck too hard", "Skipping tuning because it takes time"},
		},
		{
			title:       "Your First Guitar Chords",
			mainTask:    "Learn the E minor and A minor chords",
			explanation: "Em and Am use few fingers and sound good right away, which makes them the classic first chords.",
			howTo:       []string{"Place your fingers for Em and strum once", "Check that every string rings", "Do the same for Am", "Switch between them slowly 20 times"},
			checklist:   []string{"Em rings clearly", "Am rings clearly", "20 slow chord changes"},
			tips:        []string{"Press just behind the fret, not on top of it", "Sore fingertips are normal the first week"},
			mistakes:    []string{"Muting strings with the palm", "Looking away from the fretting hand too early"},
		},
		{
			title:       "Strumming Patterns and Rhythm",
			mainTask:    "Play a down-down-up-up-down-up strum over Em and Am",
			explanation: "Rhythm is what turns chords into music. A steady strumming pattern matters more than speed.",
			howTo:       []string{"Mute the strings and practice the pattern", "Count out loud 1 and 2 and 3 and 4 and", "Add the Em chord", "Change to Am every four beats"},
			checklist:   []string{"Pattern played muted", "Pattern played on Em", "Changes on the beat"},
			tips:        []string{"Use a metronome at 60 bpm", "Keep the strumming hand moving even on missed strokes"},
			mistakes:    []string{"Stopping the strum hand to change chords", "Speeding up without noticing"},
		},
		{
			title:       "Adding G, C and D Chords",
			mainTask:    "Learn G, C and D and practice changes between them",
			explanation: "With G, C and D you can play a huge number of songs. Today is about accuracy on these three shapes.",
			howTo:       []string{"Learn each chord shape one at a time", "Strum each chord four times", "Practice G to C and C to D changes", "Play G C D G in a loop"},
			checklist:   []string{"G, C and D ring clearly", "Changes practiced in pairs", "Full loop played"},
			tips:        []string{"Move all fingers at once, not one by one", "Find common fingers between chords"},
			mistakes:    []string{"Letting the thumb creep over the neck", "Ignoring buzzing strings"},
		},
		{
			title:       "Playing Your First Song",
			mainTask:    "Play a simple four-chord song from start to finish",
			explanation: "Playing a real song is the best motivation. Pick one that uses the chords you already know.",
			howTo:       []string{"Choose a song with G, C, D and Em", "Read through the chord chart", "Play along slowly without the recording", "Play along with the recording"},
			checklist:   []string{"Song chosen", "Chord chart learned", "Played through once without stopping"},
			tips:        []string{"Slow the recording down if needed", "Keep going through mistakes"},
			mistakes:    []string{"Picking a song that is too fast", "Restarting every time you miss a chord"},
		},
		{
			title:       "Fingerpicking Basics",
			mainTask:    "Play a simple fingerpicking pattern over your chords",
			explanation: "Fingerpicking adds a new texture and builds finger independence in the picking hand.",
			howTo:       []string{"Assign thumb to the bass strings and fingers to G, B and E", "Play the pattern on an open Em", "Move the pattern to C and G", "Combine it with one chord change"},
			checklist:   []string{"Finger assignment learned", "Pattern on Em", "Pattern with a chord change"},
			tips:        []string{"Rest your pinky lightly on the body for support", "Go slow until the pattern feels automatic"},
			mistakes:    []string{"Using only the thumb", "Pulling the strings too hard"},
		},
		{
			title:       "Putting It Together and Practice Plan",
			mainTask:    "Perform your song with strumming and fingerpicking and plan your practice routine",
			explanation: "Today you play everything you learned and set up a routine so you keep improving after this week.",
			howTo:       []string{"Warm up with chord changes", "Play your song strummed", "Play one verse fingerpicked", "Write a 15 minute daily practice routine"},
			checklist:   []string{"Song performed", "Fingerpicked section played", "Practice routine written"},
			tips:        []string{"Record your performance to track progress", "Practice a little every day instead of a lot once a week"},
			mistakes:    []string{"Only practicing songs you already know", "Skipping the warm-up"},
		},
	},
	"cooking": {
		{
			title:       "Kitchen Setup and Knife Fundamentals",
			mainTask:    "Organize your kitchen basics and practice safe knife skills",
			explanation: "Good cooking starts with a safe, organized workspace and a knife you can control.",
			howTo:       []string{"Clear and clean your counter", "Set out a cutting board, chef's knife and bowls", "Practice the claw grip on an onion", "Dice the onion evenly"},
			checklist:   []string{"Workspace organized", "Claw grip practiced", "Onion diced"},
			tips:        []string{"A sharp knife is safer than a dull one", "Put a damp towel under the cutting board"},
			mistakes:    []string{"Cutting toward your hand", "Working on a cluttered counter"},
		},
		{
			title:       "Heat Control and Sautéing",
			mainTask:    "Sauté vegetables while managing pan heat",
			explanation: "Most home cooking comes down to controlling heat. Today you learn what medium-high really means.",
			howTo:       []string{"Preheat the pan before adding oil", "Add vegetables in a single layer", "Stir only every minute or so", "Season at the end and taste"},
			checklist:   []string{"Pan preheated", "Vegetables browned, not steamed", "Seasoning tasted"},
			tips:        []string{"Listen for a steady sizzle", "Dry vegetables brown better"},
			mistakes:    []string{"Crowding the pan", "Stirring constantly"},
		},
		{
			title:       "Cooking a Complete Simple Meal",
			mainTask:    "Cook a one-pan meal from a recipe",
			explanation: "Following a recipe end to end teaches timing and preparation.",
			howTo:       []string{"Read the whole recipe first", "Prepare all ingredients before turning on the heat", "Cook following the steps", "Plate and taste critically"},
			checklist:   []string{"Mise en place done", "Meal cooked", "Notes on taste written"},
			tips:        []string{"Clean as you go", "Set timers for each step"},
			mistakes:    []string{"Starting before reading the recipe", "Prepping while things burn"},
		},
		{
			title:       "Seasoning and Tasting",
			mainTask:    "Balance salt, acid and fat in a simple dish",
			explanation: "Seasoning is what makes food taste finished. Today you train your palate.",
			howTo:       []string{"Make a simple soup or sauce", "Taste it plain", "Add salt in small steps and taste", "Add a splash of acid and compare"},
			checklist:   []string{"Base tasted", "Salt adjusted", "Acid added and compared"},
			tips:        []string{"Season in layers throughout cooking", "Lemon or vinegar brightens flat food"},
			mistakes:    []string{"Salting only at the end", "Never tasting while cooking"},
		},
		{
			title:       "Creative Cooking With What You Have",
			mainTask:    "Create a dish without a recipe from ingredients at home",
			explanation: "Improvising builds confidence and shows what you learned this week.",
			howTo:       []string{"Pick a protein, a vegetable and a starch", "Decide on a cooking method for each", "Cook using your heat control skills", "Season and taste"},
			checklist:   []string{"Ingredients chosen", "Dish cooked", "Seasoning balanced"},
			tips:        []string{"Start from a dish you know and change one thing", "Keep notes of what worked"},
			mistakes:    []string{"Combining too many flavors", "Forgetting texture contrast"},
		},
		{
			title:       "Timing a Multi-Dish Meal",
			mainTask:    "Cook a main and a side that finish at the same time",
			explanation: "Coordinating dishes is the step from cooking to making a meal.",
			howTo:       []string{"Write down how long each dish takes", "Work backwards from serving time", "Start the longest dish first", "Finish and plate both together"},
			checklist:   []string{"Timeline written", "Both dishes cooked", "Served hot together"},
			tips:        []string{"Oven dishes free up your hands", "Rest meat while finishing the side"},
			mistakes:    []string{"Starting everything at once", "Forgetting resting time"},
		},
		{
			title:       "Your Signature Dish and Next Steps",
			mainTask:    "Cook a dish for someone else and plan your next recipes",
			explanation: "Cooking for others is the best test. Then you plan what to learn next.",
			howTo:       []string{"Choose the dish you enjoyed most this week", "Cook it for a friend or family member", "Ask for honest feedback", "List three recipes to try next week"},
			checklist:   []string{"Dish cooked for someone", "Feedback collected", "Next recipes listed"},
			tips:        []string{"Pick something you have cooked before", "Write your own version of the recipe"},
			mistakes:    []string{"Trying a brand new recipe for guests", "Ignoring feedback"},
		},
	},
	"drawing": {
		{
			title:       "Drawing Fundamentals and Setup",
			mainTask:    "Set up your materials and practice lines and basic shapes",
			explanation: "Confident lines and simple shapes are the foundation of every drawing.",
			howTo:       []string{"Get a sketchbook and two pencils (HB and 2B)", "Fill a page with straight lines in all directions", "Draw circles, squares and triangles", "Repeat the shapes faster"},
			checklist:   []string{"Materials ready", "Page of lines", "Page of shapes"},
			tips:        []string{"Draw from the shoulder, not the wrist", "Do not erase, draw the line again"},
			mistakes:    []string{"Pressing too hard", "Erasing constantly"},
		},
		{
			title:       "Seeing Basic Forms",
			mainTask:    "Turn shapes into 3D forms: sphere, cube and cylinder",
			explanation: "Most objects are combinations of simple forms. Learning them makes everything easier to draw.",
			howTo:       []string{"Draw a cube in two-point view", "Draw a cylinder with ellipses", "Draw a sphere with a light direction", "Combine two forms into one object"},
			checklist:   []string{"Cube drawn", "Cylinder drawn", "Sphere drawn"},
			tips:        []string{"Draw through the form to see hidden edges", "Keep ellipses symmetric"},
			mistakes:    []string{"Drawing outlines only", "Ignoring perspective"},
		},
		{
			title:       "Drawing From Observation",
			mainTask:    "Draw a simple object from life",
			explanation: "Drawing what you see instead of what you think you see is the core skill of drawing.",
			howTo:       []string{"Place a mug or fruit in good light", "Block in the big shapes lightly", "Refine the contours", "Add the main shadows"},
			checklist:   []string{"Object set up", "Big shapes blocked in", "Shadows added"},
			tips:        []string{"Look at the object more than at the paper", "Squint to see the shadows"},
			mistakes:    []string{"Starting with details", "Drawing from memory instead of looking"},
		},
		{
			title:       "Shading and Values",
			mainTask:    "Create a value scale and shade a sphere",
			explanation: "Values give drawings depth. Today you practice controlling light and dark.",
			howTo:       []string{"Draw a five-step value scale", "Shade a sphere with a clear light source", "Add a cast shadow", "Compare the values with your scale"},
			checklist:   []string{"Value scale done", "Sphere shaded", "Cast shadow added"},
			tips:        []string{"Build darks in layers", "Keep the lightest areas clean"},
			mistakes:    []string{"Smudging everything", "Using only middle grays"},
		},
		{
			title:       "Creative Sketching",
			mainTask:    "Sketch a scene or character from your imagination",
			explanation: "Using the fundamentals creatively keeps drawing fun and personal.",
			howTo:       []string{"Make three quick thumbnail sketches", "Pick the strongest one", "Build it with basic forms", "Add values"},
			checklist:   []string{"Thumbnails made", "One developed", "Values added"},
			tips:        []string{"Keep thumbnails small and fast", "Borrow ideas from drawings you like"},
			mistakes:    []string{"Skipping thumbnails", "Aiming for a finished piece too early"},
		},
		{
			title:       "Perspective and Composition",
			mainTask:    "Draw a room corner or street in one-point perspective",
			explanation: "Perspective and composition bring your skills together into believable scenes.",
			howTo:       []string{"Draw a horizon line and vanishing point", "Block in walls or buildings", "Add objects using your forms", "Shade the scene"},
			checklist:   []string{"Vanishing point set", "Scene blocked in", "Scene shaded"},
			tips:        []string{"Use a ruler for construction lines only", "Place the focal point off-center"},
			mistakes:    []string{"Multiple vanishing points by accident", "Crowding the page"},
		},
		{
			title:       "Finished Drawing and Practice Plan",
			mainTask:    "Complete a finished drawing and plan daily sketching",
			explanation: "Finishing a piece shows how far you came. A daily sketch habit keeps the progress going.",
			howTo:       []string{"Choose a subject you enjoyed this week", "Take it from thumbnail to finished shading", "Compare with your day 1 page", "Plan a 15 minute daily sketch routine"},
			checklist:   []string{"Drawing finished", "Progress compared", "Routine planned"},
			tips:        []string{"Date every page in your sketchbook", "Follow an online challenge for ideas"},
			mistakes:    []string{"Waiting for inspiration", "Only drawing what you are good at"},
		},
	},
}
