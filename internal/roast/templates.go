// internal/roast/templates.go
package roast

// Each pool holds alternative phrasings of the same observation. Pool
// contents are data, not logic; placeholders in braces are resolved against
// the current analysis values at generation time.

var noReadmePool = []string{
	"README files are like brushing your teeth - you should do it, but clearly you don't. ({readmeCount}/{totalRepos} repos have descriptions)",
	"Your repos are like mystery boxes, except nobody wants to open them. Only {readmeCount} documented!",
	"Documentation? Never heard of her. Neither have your {undocumentedCount} undocumented repos.",
	"Your code speaks for itself... unfortunately, it's screaming for help. {docPercent}% documented.",
}

var lowStarsPool = []string{
	"Your star count is so low ({totalStars} total), astronomers can't even find it.",
	"Even your mom wouldn't star your repos. {totalStars} stars across {totalRepos} repos? Oof.",
	"The only star your repos will see is the one that explodes when the sun dies. Current count: {totalStars}.",
	"Your repos have fewer stars ({totalStars}) than a cloudy night.",
}

var inactivePool = []string{
	"Your GitHub is so inactive ({daysSinceUpdate} days since last update), archaeologists are studying it.",
	"Last commit was {daysSinceUpdate} days ago. Dinosaurs were still pushing to main.",
	"Your contribution graph looks like a barcode... for a discontinued product. {inactiveCount} inactive repos!",
	"Ghost mode activated for {daysSinceUpdate} days. Even Casper commits more than you.",
}

var singleLanguagePool = []string{
	"One language ({topLanguage})? That's like eating the same meal every day. Spice it up!",
	"Your tech stack has the diversity of a monochrome painting. Just {languageCount} language(s).",
	"Learning a new language won't hurt... much. Currently stuck on {topLanguage}.",
	"You put all your eggs in one {topLanguage} basket. The basket is on fire.",
}

var forkHeavyPool = []string{
	"Your GitHub is just a fork collection at this point. {forkedCount} forks vs {originalCount} original.",
	"More forks ({forkedCount}) than a fancy restaurant, but none of the original content.",
	"You're the DJ Khaled of GitHub - 'another one' but it's all {forkedCount} forks.",
}

var noFollowersPool = []string{
	"Your follower count ({followers}) is like your code - empty.",
	"Even bots don't follow you. {followers} followers? That takes talent.",
	"Lonely GitHub profile with {followers} followers seeks literally anyone who cares.",
}

var noBioPool = []string{
	"No bio? You're basically a GitHub ghost.",
	"Your profile is as mysterious as your commit messages: empty.",
	"Who are you? Nobody knows, including your GitHub profile.",
}

var tooManyReposPool = []string{
	"Quality over quantity clearly isn't your motto. {totalRepos} repos, {avgStars} avg stars.",
	"You have more repos ({totalRepos}) than commits. Interesting strategy.",
	"GitHub isn't Pokemon - you don't need to create all {totalRepos}.",
}

var goodDeveloperPool = []string{
	"Honestly? Not bad. {totalStars} stars, {docPercent}% documented. Annoyingly competent.",
	"You're making other developers look bad with your {finalScore} score. How inconsiderate.",
	"I came here to roast, but you're already on fire (in a good way). {totalStars} stars!",
	"Well-documented ({docPercent}%), active, and {totalStars} stars? Show-off.",
}

// Recruiter insights have exactly one good and one bad phrasing per
// category; the score threshold picks between them, with no randomness.
var recruiterPhrasings = map[string]struct{ good, bad string }{
	"activity": {
		good: "Shows consistent engagement with {recentCount} recently updated repositories.",
		bad:  "Activity concerns: No updates in the past {daysSinceUpdate} days.",
	},
	"documentation": {
		good: "Strong documentation practices with {docPercent}% of repositories properly described.",
		bad:  "Documentation gap: Only {docPercent}% of repositories have descriptions.",
	},
	"popularity": {
		good: "Community recognition with {totalStars} total stars across projects.",
		bad:  "Limited community traction with {totalStars} total stars.",
	},
	"diversity": {
		good: "Versatile skill set demonstrated across {languageCount} programming languages.",
		bad:  "Focused expertise in {topLanguage}, opportunity to expand technical breadth.",
	},
}
