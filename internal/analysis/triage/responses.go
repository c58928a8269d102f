package triage

// replyPools holds the scripted assistant replies per category. Every pool
// is non-empty by construction; the crisis pool always names at least one
// crisis hotline and points at the Emergency resource section.
var replyPools = map[Category][]string{
	Greeting: {
		"Hello! I'm your AI support assistant. I'm here to listen and help with any mental health concerns you might have. What's on your mind today? 😊",
		"Hi there! Welcome to your 24/7 support space. Whether you're feeling stressed, anxious, or just need someone to talk to, I'm here for you. How are you feeling right now?",
		"Hey! Great to see you here. I'm your mental wellness companion, ready to support you anytime. What would you like to talk about today?",
	},
	Stress: {
		"I understand you're feeling stressed right now, and that's completely valid. Let's try a quick breathing exercise: Breathe in for 4 counts, hold for 4, exhale for 6. Would you like me to guide you through this? 🫁",
		"Anxiety can feel overwhelming, but you're not alone. Here's a grounding technique: Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, and 1 you can taste. This can help bring you back to the present moment. ✨",
		"Stress is your body's way of responding to challenges. Let's break this down - what specific situation is causing you stress? Sometimes talking through it helps clarify what we can control. 💭",
	},
	Academic: {
		"Academic pressure is so common among students - you're definitely not alone in feeling this way. Let's focus on what you can control: breaking tasks into smaller steps, taking regular breaks, and being kind to yourself. What specific academic challenge are you facing? 📚",
		"Exams can be stressful! Here's a quick study break technique: For every 25 minutes of studying, take a 5-minute break. During breaks, try stretching or deep breathing. Remember, your worth isn't defined by your grades. 🌟",
		"Feeling overwhelmed by assignments? Try the 'one thing at a time' approach. Choose the most urgent task, work on it for 30 minutes, then reassess. Would you like some tips on time management? ⏰",
	},
	Sleep: {
		"Sleep troubles are really common among students. Here are some gentle tips: Try the 4-7-8 breathing technique before bed, avoid screens 1 hour before sleep, and create a calming bedtime routine. What time do you usually try to go to bed? 🌙",
		"Having trouble sleeping can be frustrating. Consider trying our sleep stories in the Sounds section, or try progressive muscle relaxation. Start by tensing and releasing muscle groups from your toes to your head. Sweet dreams! 😴",
		"Sleep issues often relate to stress or racing thoughts. Try writing down 3 things you're grateful for and 3 concerns for tomorrow (to 'park' your worries). This can help your mind settle. Would you like more bedtime relaxation tips? 🛏️",
	},
	Loneliness: {
		"Feeling lonely is one of the most human experiences, especially as a student. You're brave for reaching out. Have you considered joining our Community section? Many students find connection through our study groups and peer support circles. 🤗",
		"Social connections are so important for mental health. Even small interactions matter - maybe try saying hi to a classmate, joining a campus activity, or reaching out to family. What social situation feels most challenging for you? 👥",
		"Homesickness and loneliness are incredibly common among students. It shows you have meaningful relationships back home. Try scheduling regular video calls with loved ones, and gradually build new connections where you are now. 🏠💕",
	},
	Crisis: {
		"I'm really glad you reached out, and I want you to know that you matter. These feelings can be overwhelming, but you don't have to face them alone. Please consider reaching out to a crisis counselor immediately. You can find emergency contacts in our Emergency section, or call the National Suicide Prevention Helpline: 9152987821. 🆘",
		"What you're feeling right now is temporary, even though it might not feel that way. Your life has value, and there are people who want to help. Please reach out to a professional immediately - check our Emergency tab for crisis resources. You deserve support and care. 💜",
		"I'm concerned about you and want to make sure you get proper help. Please contact a crisis counselor right away through our Emergency section, or call KIRAN Mental Health Helpline: 1800-599-0019. You're not alone in this. 🤲",
	},
	MentalHealth: {
		"Thank you for sharing that with me. Mental health struggles are more common than you might think, and seeking support shows real strength. Have you considered speaking with a campus counselor? In the meantime, small daily activities like going for a walk or practicing gratitude can help. 🌱",
		"It's okay to not be okay sometimes. Depression can make everything feel harder, but treatment and support can really help. Our Resources section has articles about coping strategies, and our Community has peer support groups. What feels most challenging right now? 🫂",
		"Mental health is just as important as physical health. If you're considering therapy, that's a wonderful step. Many students find campus counseling services helpful and affordable. Would you like some tips on preparing for your first therapy session? 💚",
	},
	Motivation: {
		"Motivation can be tricky - it often comes after we start, not before. Try the '2-minute rule': commit to doing something for just 2 minutes. Often, starting is the hardest part. What's one small thing you could do right now? ⚡",
		"Self-care isn't selfish - it's essential! It can be as simple as taking a shower, having a healthy meal, or spending 10 minutes outside. What's one kind thing you could do for yourself today? 🌸",
		"Procrastination often comes from feeling overwhelmed or perfectionist tendencies. Try breaking tasks into tiny steps and celebrating small wins. Remember: progress over perfection. What task has been on your mind? 🎯",
	},
	Focus: {
		"Concentration issues are super common, especially with so many distractions around. Try the Pomodoro Technique: 25 minutes focused work, 5-minute break. Also, check if you're getting enough sleep, water, and movement. What environment helps you focus best? 🎯",
		"Distractions are everywhere! Try creating a dedicated study space, using website blockers, or finding background sounds that help you focus. Our Sounds section has focus-enhancing audio. What usually distracts you most? 🔍",
	},
	Default: {
		"I hear you, and I'm here to support you. Can you tell me more about what you're experiencing? Sometimes talking through our feelings can help us understand them better. 💙",
		"Thank you for sharing with me. It takes courage to reach out. What would be most helpful for you right now - some coping strategies, someone to listen, or information about resources? 🤗",
		"I'm here to listen and support you in whatever way I can. Every feeling you have is valid, and you don't have to go through this alone. What's been on your mind lately? 💭",
	},
}

// Pool returns a copy of the reply pool for a category.
func Pool(category Category) []string {
	return append([]string(nil), replyPools[category]...)
}
