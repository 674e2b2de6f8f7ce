// Package jokes holds the payload served behind the auth gate. The content
// itself is irrelevant to the gate; it only needs to exist.
package jokes

// Joke is a single dad joke.
type Joke struct {
	ID   string `json:"id"`
	Joke string `json:"joke"`
}

// All is the full listing returned to authenticated callers.
var All = []Joke{
	{ID: "0189hNRf2g", Joke: "I'm tired of following my dreams. I'm just going to ask them where they are going and meet up with them later."},
	{ID: "08EQZ8EQukb", Joke: "Did you hear about the guy whose whole left side was cut off? He's all right now."},
	{ID: "08xHQCdx5Ed", Joke: "Why didn't the skeleton cross the road? Because he had no guts."},
	{ID: "0DQKB51oGlb", Joke: "What did one nut say as he chased another nut? I'm a cashew!"},
	{ID: "0DtrrOZDlyd", Joke: "Chances are if you've seen one shopping center, you've seen a mall."},
	{ID: "0LuXvkq4Muc", Joke: "I knew I shouldn't steal a mixer from work, but it was a whisk I was willing to take."},
	{ID: "0ga2EdN7prc", Joke: "How come the stadium got hot after the game? Because all of the fans left."},
	{ID: "0oO71TSv4Ed", Joke: "Why was it called the dark ages? Because of all the knights."},
	{ID: "0oz51ozk3ob", Joke: "A steak pun is a rare medium well done."},
	{ID: "0ozAXv4Mmjb", Joke: "Why did the tomato blush? Because it saw the salad dressing."},
	{ID: "0wcFBQfiGBd", Joke: "Did you hear the joke about the wandering nun? She was a roman catholic."},
	{ID: "189xHQ7pOuc", Joke: "What creature is smarter than a talking parrot? A spelling bee."},
	{ID: "18Elj3EIYvc", Joke: "I'll tell you what often gets over looked... garden fences."},
	{ID: "18h3wcU8xAd", Joke: "Why did the kid cross the playground? To get to the other slide."},
	{ID: "1DIRSfx51Dd", Joke: "Why do birds fly south for the winter? Because it's too far to walk."},
	{ID: "1DQZDY0gVnb", Joke: "What is a centipedes's favorite Beatle song? I want to hold your hand, hand, hand, hand..."},
	{ID: "1DQZvXvX8Ed", Joke: "My first time using an elevator was an uplifting experience. The second time let me down."},
	{ID: "1Dt4M7Ufaxc", Joke: "To be Frank, I'd have to change my name."},
	{ID: "1T01LBXLuzd", Joke: "Slept like a log last night... woke up in the fireplace."},
	{ID: "1T7kb5QlsBd", Joke: "Why does a Moon-rock taste better than an Earth-rock? Because it's a little meteor."},
}
