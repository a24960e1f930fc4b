package selector

import (
	"fmt"
	"strings"
)

// curatedExamples are kid-friendly sentences used in preference to anything
// a dictionary returns.
var curatedExamples = map[string]string{
	"serendipity":   "It was serendipity when I found my favorite toy under the bed!",
	"ephemeral":     "Rainbows are ephemeral - they disappear quickly!",
	"ubiquitous":    "Cars are ubiquitous in the city - you see them everywhere!",
	"eloquent":      "The storyteller was so eloquent that everyone listened quietly.",
	"resilient":     "Kids are resilient - they get up and try again when they fall!",
	"authentic":     "This is an authentic dinosaur bone from millions of years ago!",
	"innovative":    "The inventor was innovative - he created a robot that cleans rooms!",
	"persistent":    "The persistent ant kept carrying food until it reached its home.",
	"versatile":     "A pencil is versatile - you can write, draw, and even use it as a ruler!",
	"diligent":      "The diligent student finished all her homework before playing.",
	"magnificent":   "The magnificent castle had towers that touched the clouds!",
	"curious":       "The curious cat explored every corner of the new house.",
	"generous":      "The generous boy shared his cookies with his friends.",
	"courageous":    "The courageous firefighter saved the kitten from the tree.",
	"brilliant":     "The brilliant scientist discovered how to make plants grow faster.",
	"adventurous":   "The adventurous explorer climbed the highest mountain.",
	"compassionate": "The compassionate nurse comforted the scared little patient.",
	"enthusiastic":  "The enthusiastic puppy wagged its tail when it saw its owner.",
	"determined":    "The determined athlete practiced every day to win the race.",
	"imaginative":   "The imaginative artist painted pictures of flying elephants!",
	"meticulous":    "The meticulous builder made sure every brick was perfectly straight.",
	"optimistic":    "The optimistic girl believed she would find her lost toy.",
	"tenacious":     "The tenacious dog held onto its toy and wouldn't let go.",
	"astute":        "The astute detective solved the mystery in just one day.",
	"charismatic":   "The charismatic teacher made learning fun for everyone.",
}

// GenericExample is the fallback sentence for words without a curated example.
func GenericExample(headword, definition string) string {
	return fmt.Sprintf("The word \"%s\" means %s. Can you use it in a sentence?",
		headword, strings.ToLower(strings.TrimRight(definition, ". ")))
}
