// Command motion runs and shows the motion widgets.
package main

func main() {
	Execute()
}
