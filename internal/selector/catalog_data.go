package selector

import "github.com/mrlokans/wordmail/internal/entities"

// seedEntries is the curated word list. Some headwords appear more than once
// with different wording; NewCatalog keeps one entry per headword.
var seedEntries = []entities.VocabularyEntry{
	{Headword: "serendipity", Definition: "Finding something nice without looking for it", PartOfSpeech: "noun", Example: "It was serendipity when I found my favorite toy under the bed!"},
	{Headword: "ephemeral", Definition: "Something that doesn't last very long", PartOfSpeech: "adjective", Example: "Rainbows are ephemeral - they disappear quickly!"},
	{Headword: "ubiquitous", Definition: "Something that is everywhere you look", PartOfSpeech: "adjective", Example: "Cars are ubiquitous in the city - you see them everywhere!"},
	{Headword: "eloquent", Definition: "Speaking in a beautiful and clear way", PartOfSpeech: "adjective", Example: "The storyteller was so eloquent that everyone listened quietly."},
	{Headword: "resilient", Definition: "Bouncing back quickly when something bad happens", PartOfSpeech: "adjective", Example: "Kids are resilient - they get up and try again when they fall!"},
	{Headword: "authentic", Definition: "Real and true, not fake", PartOfSpeech: "adjective", Example: "This is an authentic dinosaur bone from millions of years ago!"},
	{Headword: "innovative", Definition: "Coming up with new and clever ideas", PartOfSpeech: "adjective", Example: "The inventor was innovative - he created a robot that cleans rooms!"},
	{Headword: "persistent", Definition: "Not giving up, even when it's hard", PartOfSpeech: "adjective", Example: "The persistent ant kept carrying food until it reached its home."},
	{Headword: "versatile", Definition: "Able to do many different things", PartOfSpeech: "adjective", Example: "A pencil is versatile - you can write, draw, and even use it as a ruler!"},
	{Headword: "diligent", Definition: "Working hard and being careful with your work", PartOfSpeech: "adjective", Example: "The diligent student finished all her homework before playing."},
	{Headword: "magnificent", Definition: "Very beautiful and impressive", PartOfSpeech: "adjective", Example: "The magnificent castle had towers that touched the clouds!"},
	{Headword: "curious", Definition: "Wanting to know more about things", PartOfSpeech: "adjective", Example: "The curious cat explored every corner of the new house."},
	{Headword: "generous", Definition: "Sharing with others and being kind", PartOfSpeech: "adjective", Example: "The generous boy shared his cookies with his friends."},
	{Headword: "courageous", Definition: "Brave and not afraid to do the right thing", PartOfSpeech: "adjective", Example: "The courageous firefighter saved the kitten from the tree."},
	{Headword: "brilliant", Definition: "Very smart and clever", PartOfSpeech: "adjective", Example: "The brilliant scientist discovered how to make plants grow faster."},
	{Headword: "adventurous", Definition: "Loving to try new things and explore", PartOfSpeech: "adjective", Example: "The adventurous explorer climbed the highest mountain."},
	{Headword: "compassionate", Definition: "Caring about others and their feelings", PartOfSpeech: "adjective", Example: "The compassionate nurse comforted the scared little patient."},
	{Headword: "enthusiastic", Definition: "Very excited and happy about something", PartOfSpeech: "adjective", Example: "The enthusiastic puppy wagged its tail when it saw its owner."},
	{Headword: "determined", Definition: "Having a strong goal and working hard to reach it", PartOfSpeech: "adjective", Example: "The determined athlete practiced every day to win the race."},
	{Headword: "imaginative", Definition: "Good at thinking of fun new ideas", PartOfSpeech: "adjective", Example: "The imaginative artist painted pictures of flying elephants!"},
	{Headword: "meticulous", Definition: "Being very careful and paying attention to small details", PartOfSpeech: "adjective", Example: "The meticulous builder made sure every brick was perfectly straight."},
	{Headword: "optimistic", Definition: "Always thinking that good things will happen", PartOfSpeech: "adjective", Example: "The optimistic girl believed she would find her lost toy."},
	{Headword: "tenacious", Definition: "Holding on tightly and not letting go", PartOfSpeech: "adjective", Example: "The tenacious dog held onto its toy and wouldn't let go."},
	{Headword: "astute", Definition: "Very smart and good at understanding things quickly", PartOfSpeech: "adjective", Example: "The astute detective solved the mystery in just one day."},
	{Headword: "charismatic", Definition: "Having a special charm that makes people like you", PartOfSpeech: "adjective", Example: "The charismatic teacher made learning fun for everyone."},
	{Headword: "perspicacious", Definition: "Quick to notice and understand things", PartOfSpeech: "adjective", Example: "The perspicacious teacher could see when students were struggling."},
	{Headword: "magnanimous", Definition: "Kind and quick to forgive others", PartOfSpeech: "adjective", Example: "The magnanimous winner congratulated the other team."},
	{Headword: "voracious", Definition: "Wanting lots of something, like books", PartOfSpeech: "adjective", Example: "The voracious reader finished three books in one week."},
	{Headword: "ubiquitous", Definition: "Present everywhere at the same time", PartOfSpeech: "adjective", Example: "Smartphones are ubiquitous in modern society."},
	{Headword: "enigmatic", Definition: "Mysterious and hard to understand", PartOfSpeech: "adjective", Example: "The enigmatic painting left everyone wondering what it meant."},
	{Headword: "diligent", Definition: "Working with careful attention and effort", PartOfSpeech: "adjective", Example: "The diligent student studied every night for the exam."},
	{Headword: "eloquent", Definition: "Speaking or writing in a beautiful and expressive way", PartOfSpeech: "adjective", Example: "The eloquent speaker moved the entire audience to tears."},
	{Headword: "resilient", Definition: "Able to recover quickly from difficulties", PartOfSpeech: "adjective", Example: "The resilient community rebuilt after the storm."},
	{Headword: "authentic", Definition: "Genuine and real, not fake or copied", PartOfSpeech: "adjective", Example: "The restaurant served authentic Italian food."},
	{Headword: "innovative", Definition: "Introducing new ideas or methods", PartOfSpeech: "adjective", Example: "The innovative company created a revolutionary product."},
	{Headword: "persistent", Definition: "Continuing firmly despite obstacles", PartOfSpeech: "adjective", Example: "The persistent inventor tried 100 times before succeeding."},
	{Headword: "versatile", Definition: "Able to adapt to many different uses", PartOfSpeech: "adjective", Example: "The versatile tool can be used for many different jobs."},
	{Headword: "magnificent", Definition: "Extremely beautiful and impressive", PartOfSpeech: "adjective", Example: "The magnificent palace took 20 years to build."},
	{Headword: "curious", Definition: "Eager to learn or know something", PartOfSpeech: "adjective", Example: "The curious scientist asked many questions."},
	{Headword: "generous", Definition: "Willing to give more than is necessary", PartOfSpeech: "adjective", Example: "The generous donor gave millions to charity."},
	{Headword: "courageous", Definition: "Brave and willing to face danger", PartOfSpeech: "adjective", Example: "The courageous firefighter saved the child from the fire."},
	{Headword: "brilliant", Definition: "Exceptionally intelligent or talented", PartOfSpeech: "adjective", Example: "The brilliant mathematician solved the impossible problem."},
	{Headword: "adventurous", Definition: "Willing to take risks and try new things", PartOfSpeech: "adjective", Example: "The adventurous explorer discovered ancient ruins."},
	{Headword: "compassionate", Definition: "Feeling sympathy and concern for others", PartOfSpeech: "adjective", Example: "The compassionate doctor comforted the worried patient."},
	{Headword: "enthusiastic", Definition: "Showing intense excitement and interest", PartOfSpeech: "adjective", Example: "The enthusiastic crowd cheered for their team."},
	{Headword: "determined", Definition: "Having a strong will to achieve something", PartOfSpeech: "adjective", Example: "The determined athlete trained for years to win the gold medal."},
	{Headword: "imaginative", Definition: "Creative and full of imagination", PartOfSpeech: "adjective", Example: "The imaginative writer created a whole new world in her book."},
	{Headword: "meticulous", Definition: "Very careful and precise about details", PartOfSpeech: "adjective", Example: "The meticulous craftsman created perfect furniture."},
	{Headword: "optimistic", Definition: "Hopeful and confident about the future", PartOfSpeech: "adjective", Example: "The optimistic leader inspired hope during challenging times."},
	{Headword: "tenacious", Definition: "Persistent and not giving up easily", PartOfSpeech: "adjective", Example: "The tenacious lawyer fought for justice for many years."},
	{Headword: "astute", Definition: "Clever and good at understanding situations", PartOfSpeech: "adjective", Example: "The astute investor made profitable decisions."},
	{Headword: "charismatic", Definition: "Having a compelling charm that inspires devotion", PartOfSpeech: "adjective", Example: "The charismatic teacher made learning exciting for everyone."},
	{Headword: "sagacious", Definition: "Wise and showing good judgment", PartOfSpeech: "adjective", Example: "The sagacious elder gave wise advice to the young people."},
	{Headword: "prudent", Definition: "Careful and sensible in making decisions", PartOfSpeech: "adjective", Example: "The prudent investor saved money for emergencies."},
	{Headword: "arduous", Definition: "Requiring great effort and hard work", PartOfSpeech: "adjective", Example: "The arduous journey through the mountains took weeks."},
	{Headword: "concise", Definition: "Brief but comprehensive and clear", PartOfSpeech: "adjective", Example: "The concise explanation helped everyone understand quickly."},
	{Headword: "diligent", Definition: "Working with steady effort and attention", PartOfSpeech: "adjective", Example: "The diligent student completed all assignments on time."},
	{Headword: "eloquent", Definition: "Fluent and persuasive in speech or writing", PartOfSpeech: "adjective", Example: "The eloquent speaker moved the entire audience."},
	{Headword: "resilient", Definition: "Able to withstand and recover from difficulties", PartOfSpeech: "adjective", Example: "The resilient community rebuilt stronger after the disaster."},
	{Headword: "authentic", Definition: "Genuine and not counterfeit or copied", PartOfSpeech: "adjective", Example: "The restaurant served authentic cuisine from the region."},
	{Headword: "innovative", Definition: "Featuring new methods or ideas", PartOfSpeech: "adjective", Example: "The innovative company revolutionized the industry."},
	{Headword: "persistent", Definition: "Continuing firmly despite opposition or difficulty", PartOfSpeech: "adjective", Example: "The persistent inventor never gave up on his dream."},
	{Headword: "versatile", Definition: "Capable of adapting to many different functions", PartOfSpeech: "adjective", Example: "The versatile tool can be used for multiple purposes."},
	{Headword: "magnificent", Definition: "Extremely beautiful and impressive", PartOfSpeech: "adjective", Example: "The magnificent cathedral took centuries to complete."},
	{Headword: "curious", Definition: "Eager to learn or know something", PartOfSpeech: "adjective", Example: "The curious child asked questions about everything."},
	{Headword: "generous", Definition: "Willing to give more than is necessary", PartOfSpeech: "adjective", Example: "The generous donor supported many charitable causes."},
	{Headword: "courageous", Definition: "Brave and willing to face danger or difficulty", PartOfSpeech: "adjective", Example: "The courageous soldier protected his comrades."},
	{Headword: "brilliant", Definition: "Exceptionally intelligent or talented", PartOfSpeech: "adjective", Example: "The brilliant scientist made groundbreaking discoveries."},
	{Headword: "adventurous", Definition: "Willing to take risks and try new experiences", PartOfSpeech: "adjective", Example: "The adventurous traveler explored remote parts of the world."},
	{Headword: "compassionate", Definition: "Feeling sympathy and concern for others", PartOfSpeech: "adjective", Example: "The compassionate nurse cared for patients with kindness."},
	{Headword: "enthusiastic", Definition: "Showing intense excitement and interest", PartOfSpeech: "adjective", Example: "The enthusiastic fans cheered loudly for their team."},
	{Headword: "determined", Definition: "Having a strong will to achieve something", PartOfSpeech: "adjective", Example: "The determined athlete trained for years to reach the Olympics."},
	{Headword: "imaginative", Definition: "Creative and full of imagination", PartOfSpeech: "adjective", Example: "The imaginative artist created unique and beautiful paintings."},
	{Headword: "meticulous", Definition: "Very careful and precise about details", PartOfSpeech: "adjective", Example: "The meticulous craftsman created perfect furniture."},
	{Headword: "optimistic", Definition: "Hopeful and confident about the future", PartOfSpeech: "adjective", Example: "The optimistic leader inspired hope during challenging times."},
	{Headword: "tenacious", Definition: "Persistent and not giving up easily", PartOfSpeech: "adjective", Example: "The tenacious lawyer fought for justice for many years."},
	{Headword: "astute", Definition: "Clever and good at understanding situations", PartOfSpeech: "adjective", Example: "The astute investor made profitable decisions."},
	{Headword: "charismatic", Definition: "Having a compelling charm that inspires devotion", PartOfSpeech: "adjective", Example: "The charismatic teacher made learning exciting for everyone."},
}
