// Command cmdchain records compute command chains into a recording target
// and prints what was recorded.
package main

func main() {
	Execute()
}
