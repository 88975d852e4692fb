package services

import (
	"math/rand"
	"strings"
)

// Selector chọn một chỉ số trong [0, n) khi category có nhiều câu trả lời.
// Mặc định dùng rand, test có thể inject selector cố định.
type Selector func(n int) int

// ChatbotServiceOptions chứa các tùy chọn để khởi tạo ChatbotService
type ChatbotServiceOptions struct {
	Selector Selector
}

// ChatbotService trả lời tin nhắn theo luật keyword cho trang portfolio
type ChatbotService struct {
	pick Selector
}

// NewChatbotService tạo một instance mới của ChatbotService
func NewChatbotService(opts ChatbotServiceOptions) *ChatbotService {
	pick := opts.Selector
	if pick == nil {
		pick = rand.Intn
	}
	return &ChatbotService{pick: pick}
}

type botCategory struct {
	keywords  []string
	responses []string
}

// Thứ tự category là cố định, category đầu tiên khớp sẽ thắng.
var botCategories = []botCategory{
	{
		keywords: []string{"hi", "hello", "hey", "greetings"},
		responses: []string{
			"Hello! I'm here to help you learn about Amit's work and skills.",
			"Hi there! What would you like to know about Amit?",
			"Hey! I can tell you about Amit's projects, skills, or experience.",
		},
	},
	{
		keywords: []string{"skill", "technology", "tech", "programming", "language"},
		responses: []string{`Amit is skilled in:

🚀 **Frontend**: React, TypeScript, JavaScript, HTML5, CSS3, Tailwind CSS
💻 **Backend**: Python, Django, Node.js, REST APIs
🗄️ **Database**: PostgreSQL, MySQL, SQLite, MongoDB
☁️ **Cloud**: AWS, Docker, CI/CD
🔧 **Tools**: Git, Linux, IoT Development

What specific technology would you like to know more about?`},
	},
	{
		keywords: []string{"project", "work", "portfolio", "built", "created"},
		responses: []string{`Here are some of Amit's notable projects:

🛍️ **E-commerce Platform**: Full-stack web application with React & Django
🏠 **IoT Home Automation**: Smart home system with sensor integration
📱 **Portfolio Website**: This very site you're on! Built with React & Django
🔧 **Various Web Apps**: Multiple client projects using modern tech stack

Would you like details about any specific project?`},
	},
	{
		keywords: []string{"experience", "work", "job", "career", "company"},
		responses: []string{`Amit's professional experience includes:

💼 **Max International** - Junior Cloud Engineer (2025 - current)
   Managing cloud infrastructure and web application deployment

🚀 **Innovate Nepal Group** - Frontend Intern (2025 - current)
   React development and IoT project collaboration

💻 **Freelance** - Frontend Developer (2023 - Present)
   Building responsive UIs and IoT integrations

Want to know more about any specific role?`},
	},
	{
		keywords: []string{"contact", "reach", "email", "hire", "work together"},
		responses: []string{`You can reach Amit through:

📧 **Contact Form**: Use the contact form on this website
💼 **LinkedIn**: Connect for professional opportunities
📱 **Direct Message**: Available for project discussions
🤝 **Collaboration**: Open to freelance and full-time opportunities

Feel free to use the contact form below to get in touch!`},
	},
	{
		keywords:  []string{"location", "where", "based", "live"},
		responses: []string{"Amit is based in Kathmandu, Nepal 🇳🇵 and available for both local and remote opportunities!"},
	},
	{
		keywords: []string{"education", "study", "degree", "university", "college", "bachelor", "plus two"},
		responses: []string{`Amit's educational background:

🎓 **Bachelor's Degree** - Computer Science & Engineering
   London Metropolitan University (UK Affiliated)
   Itahari International College, Nepal (2021-2025)

📚 **Plus Two (+2)** - Science
   Kathmandu Model College (KMC), Kathmandu (2019-2021)

🌟 **Key Areas**: Software Engineering, Data Structures, Web Technologies, Database Management, and Project Management

Always expanding knowledge through hands-on projects and continuous learning!`},
	},
	{
		keywords: []string{"iot", "internet of things", "sensors", "hardware", "arduino", "raspberry"},
		responses: []string{`Amit has extensive IoT experience:

🔧 **Hardware**: Arduino, Raspberry Pi, ESP32/ESP8266
📡 **Sensors**: Temperature, humidity, motion, light sensors
🌐 **Connectivity**: WiFi, Bluetooth, MQTT protocols
☁️ **Cloud Integration**: AWS IoT, real-time data processing
🏠 **Applications**: Home automation, monitoring systems

Interested in IoT project collaboration?`},
	},
	{
		keywords: []string{"thank", "thanks", "appreciate"},
		responses: []string{
			"You're welcome! Feel free to ask anything else about Amit.",
			"Happy to help! Is there anything else you'd like to know?",
			"Glad I could help! Any other questions about Amit's work?",
		},
	},
}

var defaultResponses = []string{
	"I can help you learn about Amit's skills, projects, experience, or how to contact him. What interests you most?",
	"Feel free to ask about Amit's technical skills, work experience, projects, or background!",
	"I'm here to share information about Amit's professional work. What would you like to know?",
	"You can ask me about Amit's programming skills, IoT projects, work experience, or how to get in touch!",
}

// Respond trả về câu trả lời cho một tin nhắn của khách.
// Luôn trả về text, input rỗng rơi xuống nhóm mặc định.
func (s *ChatbotService) Respond(userMessage string) string {
	message := strings.ToLower(strings.TrimSpace(userMessage))

	for _, category := range botCategories {
		for _, keyword := range category.keywords {
			if strings.Contains(message, keyword) {
				return s.choose(category.responses)
			}
		}
	}

	return s.choose(defaultResponses)
}

func (s *ChatbotService) choose(responses []string) string {
	if len(responses) == 1 {
		return responses[0]
	}
	return responses[s.pick(len(responses))]
}
