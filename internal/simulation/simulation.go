// simulation/simulation.go
package simulation

import (
	"fmt"

	examsession "github.com/ontapquiz/backend/internal/domain/exam_session"
	practicesession "github.com/ontapquiz/backend/internal/domain/practice_session"
	"github.com/ontapquiz/backend/internal/domain/questionbank"
	"github.com/ontapquiz/backend/internal/domain/source"

	"github.com/ontapquiz/backend/internal/csvtable"
)

const sampleCSV = "\uFEFF" + `Câu số,Chương,Nội dung Câu hỏi,Lựa chọn A,Lựa chọn B,Lựa chọn C,Lựa chọn D,Đáp án Đúng
1,Chương 1,Con trỏ trong Go là gì?,Một kiểu số nguyên,Địa chỉ của một giá trị,Một hàm,Một goroutine,Địa chỉ của một giá trị
2,Chương 1,"Từ khóa nào khai báo hằng số?",var,const,let,static,const
3,Chương 2,Kênh (channel) dùng để làm gì?,Lưu trữ tệp,In ra màn hình,Truyền giá trị giữa các goroutine,Quản lý bộ nhớ,Truyền giá trị giữa các goroutine
4,Chương 2,Giá trị zero của kiểu string là gì?,"",0,nil,chuỗi rỗng,chuỗi rỗng
`

// Summary reports what one full walkthrough did, for logging and tests.
type Summary struct {
	BankSize        int
	PracticeCorrect bool
	ExamResult      examsession.Result
	ReviewCount     int
}

// Run exercises the whole core against a small embedded bank: parse CSV,
// build the bank, answer one practice question, then take a complete exam
// through submit and review. It is a development harness, not production
// code paths of its own — every call goes through the real domain API.
func Run() (Summary, error) {
	rows := csvtable.Parse(sampleCSV)
	bank := questionbank.FromRows("general", "Ngân hàng mẫu", rows, questionbank.DefaultMapping())
	if bank.Size() == 0 {
		return Summary{}, fmt.Errorf("sample bank is empty")
	}

	// Practice: instant feedback on one question.
	practice := practicesession.New(bank, practicesession.DefaultConfig())
	first := practice.Questions[0]
	feedback, err := practice.Answer(first.ID, first.CorrectAnswer)
	if err != nil {
		return Summary{}, err
	}

	// Exam: full pass through the state machine.
	exam := examsession.New()
	if err := exam.Configure(source.KindGeneral, bank.Questions, bank.Size()); err != nil {
		return Summary{}, err
	}
	for pos, q := range exam.Selection {
		if _, err := exam.RecordAnswer(pos, q.CorrectAnswer); err != nil {
			return Summary{}, err
		}
	}
	result, err := exam.Submit()
	if err != nil {
		return Summary{}, err
	}
	reviews, err := exam.Review()
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		BankSize:        bank.Size(),
		PracticeCorrect: feedback.IsCorrect,
		ExamResult:      result,
		ReviewCount:     len(reviews),
	}, nil
}
